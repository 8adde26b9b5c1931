package worker

import (
	"context"
	"time"

	postsvc "github.com/strategistayub/SocialProFlow/internal/api/post/service"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// SchedulerWorker publish các post scheduled đã đến hạn theo chu kỳ.
// Mặc định worker tắt (SCHEDULER_ENABLED=false): schedule chỉ ghi nhận thời điểm,
// không có trigger theo đồng hồ. Bật lên khi muốn post tự publish khi đến hạn.
type SchedulerWorker struct {
	postService *postsvc.PostService
	interval    time.Duration // Khoảng thời gian giữa các lần quét
}

// NewSchedulerWorker tạo worker với service đã wire.
// interval dưới 10 giây được nâng lên mặc định 1 phút.
func NewSchedulerWorker(postService *postsvc.PostService, interval time.Duration) *SchedulerWorker {
	if interval < 10*time.Second {
		interval = time.Minute
	}
	return &SchedulerWorker{
		postService: postService,
		interval:    interval,
	}
}

// Start chạy worker trong vòng lặp: mỗi interval quét các post scheduled đến hạn
// và publish qua service (chuyển trạng thái published/failed như publish thủ công).
func (w *SchedulerWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🕒 [SCHEDULER] Starting Scheduler Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🕒 [SCHEDULER] Scheduler Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🕒 [SCHEDULER] Panic khi publish post đến hạn, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				published, failed, err := w.postService.PublishDue(ctx)
				if err != nil {
					log.WithError(err).Error("🕒 [SCHEDULER] Lỗi quét post đến hạn")
					return
				}
				if published > 0 || failed > 0 {
					log.WithFields(map[string]interface{}{
						"published": published,
						"failed":    failed,
					}).Info("🕒 [SCHEDULER] Publish batch done")
				}
			}()
		}
	}
}
