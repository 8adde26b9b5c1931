// package postsvc chứa business logic vòng đời của post:
// scheduled -> published | failed | paused, retry với backoff cố định.
package postsvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/strategistayub/SocialProFlow/internal/api/post/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/api/post/store"
	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/global"
	"github.com/strategistayub/SocialProFlow/internal/logger"
	"github.com/strategistayub/SocialProFlow/internal/publisher"
)

// DefaultRetryBackoff là khoảng lùi lịch mặc định khi retry post failed
const DefaultRetryBackoff = time.Hour

// StatusAll là giá trị filter đặc biệt: trả về tất cả post
const StatusAll = "all"

// Các message trả về cho client theo thao tác
const (
	MsgPublished = "Post published successfully!"
	MsgScheduled = "Post scheduled successfully!"
	MsgUpdated   = "Post updated successfully!"
	MsgDeleted   = "Post deleted successfully!"
	MsgFailed    = "Post publish failed"
)

// FailureNotifier nhận thông báo khi post publish thất bại.
// Triển khai bởi notifier.EmailNotifier; nil = không gửi cảnh báo.
type FailureNotifier interface {
	NotifyPublishFailure(ctx context.Context, post models.Post, reason string)
}

// PostService quản lý vòng đời post trên một PostStore
type PostService struct {
	store        poststore.PostStore
	publisher    publisher.Publisher
	notifier     FailureNotifier
	retryBackoff time.Duration
	now          func() time.Time
}

// NewPostService tạo service với store và publisher.
// Retry backoff mặc định là DefaultRetryBackoff, notifier mặc định tắt.
func NewPostService(store poststore.PostStore, pub publisher.Publisher) *PostService {
	return &PostService{
		store:        store,
		publisher:    pub,
		retryBackoff: DefaultRetryBackoff,
		now:          time.Now,
	}
}

// SetRetryBackoff đổi khoảng lùi lịch khi retry (d <= 0 giữ nguyên mặc định)
func (s *PostService) SetRetryBackoff(d time.Duration) {
	if d > 0 {
		s.retryBackoff = d
	}
}

// SetNotifier bật cảnh báo publish thất bại
func (s *PostService) SetNotifier(n FailureNotifier) {
	s.notifier = n
}

// validateInput xác thực DTO qua validator toàn cục
func validateInput(input interface{}) error {
	if global.Validate == nil {
		global.InitValidator()
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Invalid input data",
			common.StatusBadRequest,
			err.Error(),
		)
	}
	return nil
}

// Create tạo post mới theo action publish hoặc schedule (mặc định schedule).
// Action publish gọi publisher ngay: thành công -> published, thất bại -> failed.
// Trả về post cuối cùng và message tương ứng.
func (s *PostService) Create(ctx context.Context, input postdto.PostCreateInput) (models.Post, string, error) {
	if err := validateInput(input); err != nil {
		return models.Post{}, "", err
	}

	now := s.now()
	scheduledAt := now
	if input.ScheduledAt != nil {
		scheduledAt = *input.ScheduledAt
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	post := models.Post{
		ID:          uuid.NewString(),
		Content:     input.Content,
		Platforms:   input.Platforms,
		Images:      images,
		Status:      models.StatusScheduled,
		ScheduledAt: scheduledAt,
		PublishedAt: nil,
		Engagement:  models.Engagement{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	message := MsgScheduled
	if input.Action == postdto.ActionPublish {
		if err := s.publisher.Publish(ctx, post); err != nil {
			logger.WithModule("post").WithError(err).WithFields(map[string]interface{}{
				"post_id": post.ID,
			}).Warn("Publish failed on create")

			post.Status = models.StatusFailed
			message = MsgFailed
			s.notifyFailure(ctx, post, err.Error())
		} else {
			publishedAt := s.now()
			post.Status = models.StatusPublished
			post.PublishedAt = &publishedAt
			message = MsgPublished
		}
	}

	created, err := s.store.Insert(ctx, post)
	if err != nil {
		return models.Post{}, "", err
	}

	return created, message, nil
}

// Get lấy post theo id
func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	return s.store.Get(ctx, id)
}

// Update cập nhật nội dung post (partial: field nil giữ nguyên), refresh updatedAt
func (s *PostService) Update(ctx context.Context, id string, input postdto.PostUpdateInput) (models.Post, error) {
	if err := validateInput(input); err != nil {
		return models.Post{}, err
	}

	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Platforms != nil {
		post.Platforms = input.Platforms
	}
	if input.ScheduledAt != nil {
		post.ScheduledAt = *input.ScheduledAt
	}
	if input.Images != nil {
		post.Images = input.Images
	}
	post.UpdatedAt = s.now()

	return s.store.Update(ctx, post)
}

// Delete xóa post không điều kiện, bất kể trạng thái.
// Id không tồn tại trả về ErrNotFound.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Publish publish thủ công một post scheduled.
// Thành công -> published với publishedAt; thất bại -> failed và gửi cảnh báo.
func (s *PostService) Publish(ctx context.Context, id string) (models.Post, error) {
	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusScheduled {
		return models.Post{}, invalidTransition(post.Status, "publish")
	}

	if pubErr := s.publisher.Publish(ctx, post); pubErr != nil {
		logger.WithModule("post").WithError(pubErr).WithFields(map[string]interface{}{
			"post_id": post.ID,
		}).Warn("Publish failed")

		post.Status = models.StatusFailed
		post.UpdatedAt = s.now()
		updated, err := s.store.Update(ctx, post)
		if err != nil {
			return models.Post{}, err
		}
		s.notifyFailure(ctx, updated, pubErr.Error())
		return updated, nil
	}

	publishedAt := s.now()
	post.Status = models.StatusPublished
	post.PublishedAt = &publishedAt
	post.UpdatedAt = publishedAt
	// Chỉ số tương tác bắt đầu đếm từ lúc published
	post.Engagement = models.Engagement{}

	return s.store.Update(ctx, post)
}

// MarkFailed đánh dấu post scheduled là failed (báo từ collaborator bên ngoài)
func (s *PostService) MarkFailed(ctx context.Context, id string, reason string) (models.Post, error) {
	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusScheduled {
		return models.Post{}, invalidTransition(post.Status, "fail")
	}

	post.Status = models.StatusFailed
	post.UpdatedAt = s.now()

	updated, err := s.store.Update(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	s.notifyFailure(ctx, updated, reason)
	return updated, nil
}

// Retry đưa post failed trở lại scheduled với lịch mới = now + backoff
func (s *PostService) Retry(ctx context.Context, id string) (models.Post, error) {
	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusFailed {
		return models.Post{}, invalidTransition(post.Status, "retry")
	}

	now := s.now()
	post.Status = models.StatusScheduled
	post.ScheduledAt = now.Add(s.retryBackoff)
	post.UpdatedAt = now

	return s.store.Update(ctx, post)
}

// Pause tạm dừng post scheduled
func (s *PostService) Pause(ctx context.Context, id string) (models.Post, error) {
	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusScheduled {
		return models.Post{}, invalidTransition(post.Status, "pause")
	}

	post.Status = models.StatusPaused
	post.UpdatedAt = s.now()

	return s.store.Update(ctx, post)
}

// Resume đưa post paused trở lại scheduled, giữ nguyên scheduledAt
func (s *PostService) Resume(ctx context.Context, id string) (models.Post, error) {
	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusPaused {
		return models.Post{}, invalidTransition(post.Status, "resume")
	}

	post.Status = models.StatusScheduled
	post.UpdatedAt = s.now()

	return s.store.Update(ctx, post)
}

// RecordEngagement cập nhật chỉ số tương tác từ analytics feed.
// Chỉ post published mới có tương tác; counter chỉ tăng,
// giá trị mới nhỏ hơn hiện tại bị bỏ qua.
func (s *PostService) RecordEngagement(ctx context.Context, id string, input postdto.EngagementInput) (models.Post, error) {
	if err := validateInput(input); err != nil {
		return models.Post{}, err
	}

	post, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.Status != models.StatusPublished {
		return models.Post{}, invalidTransition(post.Status, "record engagement for")
	}

	if input.Likes != nil && *input.Likes > post.Engagement.Likes {
		post.Engagement.Likes = *input.Likes
	}
	if input.Comments != nil && *input.Comments > post.Engagement.Comments {
		post.Engagement.Comments = *input.Comments
	}
	if input.Shares != nil && *input.Shares > post.Engagement.Shares {
		post.Engagement.Shares = *input.Shares
	}
	post.UpdatedAt = s.now()

	return s.store.Update(ctx, post)
}

// ListByStatus trả về post theo status (StatusAll hoặc rỗng = tất cả),
// sắp xếp scheduledAt giảm dần, tie-break ổn định theo thứ tự insert.
func (s *PostService) ListByStatus(ctx context.Context, status string) ([]models.Post, error) {
	if status == "" {
		status = StatusAll
	}
	if status != StatusAll && !models.IsValidStatus(status) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Invalid status filter: %s", status),
			common.StatusBadRequest,
			nil,
		)
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Post, 0, len(all))
	for _, post := range all {
		if status == StatusAll || post.Status == status {
			result = append(result, post)
		}
	}

	// Input đã theo thứ tự insert, sort stable giữ tie-break đó
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ScheduledAt.After(result[j].ScheduledAt)
	})

	return result, nil
}

// CountByStatus đếm post theo từng trạng thái, kèm tổng ở key "all".
// Kết quả luôn khớp với độ dài của ListByStatus tương ứng.
func (s *PostService) CountByStatus(ctx context.Context) (map[string]int, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{StatusAll: len(all)}
	for _, status := range models.AllStatuses {
		counts[status] = 0
	}
	for _, post := range all {
		counts[post.Status]++
	}

	return counts, nil
}

// PublishDue publish tất cả post scheduled đã đến hạn (scheduledAt <= now).
// Trả về số post published và failed. Dùng bởi scheduler worker.
func (s *PostService) PublishDue(ctx context.Context) (published int, failed int, err error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	now := s.now()
	for _, post := range all {
		if post.Status != models.StatusScheduled || post.ScheduledAt.After(now) {
			continue
		}

		updated, pubErr := s.Publish(ctx, post.ID)
		if pubErr != nil {
			// Post đã bị xóa/chuyển trạng thái giữa chừng, bỏ qua
			continue
		}
		if updated.Status == models.StatusPublished {
			published++
		} else {
			failed++
		}
	}

	return published, failed, nil
}

// notifyFailure gửi cảnh báo publish thất bại nếu notifier được cấu hình
func (s *PostService) notifyFailure(ctx context.Context, post models.Post, reason string) {
	if s.notifier != nil {
		s.notifier.NotifyPublishFailure(ctx, post, reason)
	}
}

// invalidTransition tạo lỗi InvalidState với thông tin trạng thái hiện tại
func invalidTransition(current string, action string) error {
	return common.NewError(
		common.ErrCodeBusinessState,
		fmt.Sprintf("Cannot %s a %s post", action, current),
		common.StatusBadRequest,
		nil,
	)
}
