package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// WebhookPublisher gửi payload publish tới một webhook URL đã cấu hình.
// Webhook nhận JSON và chịu trách nhiệm đẩy tiếp lên nền tảng thật.
type WebhookPublisher struct {
	webhookURL string
	client     *fasthttp.Client
}

// NewWebhookPublisher tạo publisher gửi tới webhookURL
func NewWebhookPublisher(webhookURL string) *WebhookPublisher {
	return &WebhookPublisher{
		webhookURL: webhookURL,
		client: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Publish gửi POST tới webhook với nội dung post.
// Status code ngoài 2xx được coi là publish thất bại.
func (p *WebhookPublisher) Publish(ctx context.Context, post models.Post) error {
	payload := map[string]interface{}{
		"postId":    post.ID,
		"content":   post.Content,
		"platforms": post.Platforms,
		"images":    post.Images,
		"timestamp": time.Now().Unix(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.webhookURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(jsonData)

	if err := p.client.DoTimeout(req, resp, 10*time.Second); err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", statusCode)
	}

	logger.WithModule("publisher").WithFields(map[string]interface{}{
		"post_id": post.ID,
		"status":  statusCode,
	}).Info("📤 [PUBLISHER] Webhook delivered")
	return nil
}
