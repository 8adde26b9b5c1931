package profiledto

import "github.com/strategistayub/SocialProFlow/internal/api/profile/models"

// ProfileSaveInput dữ liệu đầu vào khi lưu hồ sơ doanh nghiệp.
// Id rỗng: giữ id của profile hiện có, hoặc sinh mới nếu chưa có profile.
type ProfileSaveInput struct {
	ID                string                    `json:"id,omitempty"`
	BusinessName      string                    `json:"businessName" validate:"required"`
	BusinessType      string                    `json:"businessType,omitempty"`
	Address           string                    `json:"address,omitempty"`
	Phone             string                    `json:"phone,omitempty"`
	Email             string                    `json:"email,omitempty" validate:"omitempty,email"`
	ConnectedAccounts *models.ConnectedAccounts `json:"connectedAccounts,omitempty"`
}
