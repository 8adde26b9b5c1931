package postdto

import "time"

// Action khi tạo post: publish ngay hoặc schedule
const (
	ActionPublish  = "publish"
	ActionSchedule = "schedule"
)

// PostCreateInput dữ liệu đầu vào khi tạo post
type PostCreateInput struct {
	Content     string     `json:"content" validate:"required,no_xss"`
	Platforms   []string   `json:"platforms" validate:"required,min=1,dive,platform"`
	Action      string     `json:"action,omitempty" validate:"omitempty,oneof=publish schedule"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

// PostUpdateInput dữ liệu đầu vào khi cập nhật post (partial update, field nil giữ nguyên)
type PostUpdateInput struct {
	Content     *string    `json:"content,omitempty" validate:"omitempty,min=1,no_xss"`
	Platforms   []string   `json:"platforms,omitempty" validate:"omitempty,min=1,dive,platform"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

// EngagementInput dữ liệu đầu vào khi cập nhật chỉ số tương tác.
// Giá trị là số tuyệt đối mới; counter không bao giờ giảm nên giá trị nhỏ hơn hiện tại bị bỏ qua.
type EngagementInput struct {
	Likes    *int64 `json:"likes,omitempty" validate:"omitempty,min=0"`
	Comments *int64 `json:"comments,omitempty" validate:"omitempty,min=0"`
	Shares   *int64 `json:"shares,omitempty" validate:"omitempty,min=0"`
}

// PostFailInput dữ liệu đầu vào khi báo publish thất bại từ collaborator bên ngoài
type PostFailInput struct {
	Reason string `json:"reason,omitempty"`
}
