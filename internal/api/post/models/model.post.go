package models

import (
	"time"
)

// Trạng thái vòng đời của post
const (
	StatusScheduled = "scheduled" // Đã lên lịch, chờ publish
	StatusPublished = "published" // Đã publish thành công
	StatusFailed    = "failed"    // Publish thất bại, có thể retry
	StatusPaused    = "paused"    // Tạm dừng, không publish
)

// Các nền tảng được hỗ trợ
const (
	PlatformInstagram      = "instagram"
	PlatformFacebook       = "facebook"
	PlatformGoogleBusiness = "google-business"
)

// AllStatuses liệt kê các trạng thái hợp lệ của post
var AllStatuses = []string{StatusScheduled, StatusPublished, StatusFailed, StatusPaused}

// IsValidStatus kiểm tra status có thuộc danh sách trạng thái hợp lệ không
func IsValidStatus(status string) bool {
	for _, s := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Engagement chứa các chỉ số tương tác của post.
// Các counter chỉ tăng, không bao giờ giảm.
type Engagement struct {
	Likes    int64 `json:"likes" bson:"likes"`       // Số lượt thích
	Comments int64 `json:"comments" bson:"comments"` // Số bình luận
	Shares   int64 `json:"shares" bson:"shares"`     // Số lượt chia sẻ
}

// Post đại diện cho một bài đăng social media
type Post struct {
	ID string `json:"id" bson:"_id"` // UUID của post

	// ===== CONTENT =====
	Content   string   `json:"content" bson:"content"`     // Nội dung bài đăng
	Platforms []string `json:"platforms" bson:"platforms"` // Nền tảng đích: instagram, facebook, google-business
	Images    []string `json:"images" bson:"images"`       // Danh sách URL ảnh đính kèm

	// ===== STATUS =====
	Status string `json:"status" bson:"status" index:"single:1"` // Trạng thái: scheduled, published, failed, paused

	// ===== SCHEDULING =====
	ScheduledAt time.Time  `json:"scheduledAt" bson:"scheduledAt" index:"single:1,order:-1"` // Thời điểm lên lịch publish
	PublishedAt *time.Time `json:"publishedAt" bson:"publishedAt"`                           // Thời điểm publish thành công (null nếu chưa)

	// ===== ENGAGEMENT =====
	Engagement Engagement `json:"engagement" bson:"engagement"` // Chỉ số tương tác

	// ===== TIMESTAMPS =====
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật

	// Seq là số thứ tự insert, store gán khi Insert.
	// Giữ thứ tự duyệt ổn định, không xuất hiện trong response.
	Seq int64 `json:"-" bson:"seq" index:"single:1"`
}
