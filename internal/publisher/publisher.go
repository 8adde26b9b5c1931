// Package publisher chứa boundary gọi ra nền tảng social media khi publish post.
// Các channel hiện có: LogPublisher (stub, chỉ ghi log) và WebhookPublisher (POST tới webhook).
package publisher

import (
	"context"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// Publisher đẩy post lên các nền tảng đích.
// Trả về error khi publish thất bại; caller chịu trách nhiệm chuyển trạng thái post.
type Publisher interface {
	Publish(ctx context.Context, post models.Post) error
}

// LogPublisher là publisher mặc định: không gọi nền tảng thật,
// chỉ ghi log nội dung sẽ được publish.
type LogPublisher struct{}

// NewLogPublisher tạo LogPublisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish ghi log post được publish, luôn thành công
func (p *LogPublisher) Publish(ctx context.Context, post models.Post) error {
	logger.WithModule("publisher").WithFields(map[string]interface{}{
		"post_id":   post.ID,
		"platforms": post.Platforms,
	}).Info("📤 [PUBLISHER] Publishing post")
	return nil
}
