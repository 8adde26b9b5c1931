// Package notifier gửi cảnh báo khi post publish thất bại.
package notifier

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// EmailConfig chứa thông tin SMTP cho việc gửi cảnh báo
type EmailConfig struct {
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
	ToEmails  []string
}

// EmailNotifier gửi email cảnh báo qua SMTP khi post thất bại
type EmailNotifier struct {
	config EmailConfig
}

// NewEmailNotifier tạo notifier với cấu hình SMTP
func NewEmailNotifier(config EmailConfig) *EmailNotifier {
	return &EmailNotifier{config: config}
}

// NotifyPublishFailure gửi email báo post publish thất bại.
// Lỗi gửi email chỉ được log, không chặn luồng xử lý post.
func (n *EmailNotifier) NotifyPublishFailure(ctx context.Context, post models.Post, reason string) {
	if n.config.SMTPHost == "" || len(n.config.ToEmails) == 0 {
		return
	}

	htmlContent := fmt.Sprintf(
		`<p>Post <b>%s</b> failed to publish.</p><p>Platforms: %v</p><p>Reason: %s</p>`,
		post.ID, post.Platforms, reason,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.config.FromEmail)
	msg.SetHeader("To", n.config.ToEmails...)
	msg.SetHeader("Subject", fmt.Sprintf("Post publish failed: %s", post.ID))
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(n.config.SMTPHost, n.config.SMTPPort, n.config.SMTPUser, n.config.SMTPPass)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.WithModule("notifier").WithError(err).Error("Failed to send publish failure alert")
		return
	}

	logger.WithModule("notifier").WithFields(map[string]interface{}{
		"post_id": post.ID,
	}).Info("📧 [NOTIFIER] Publish failure alert sent")
}
