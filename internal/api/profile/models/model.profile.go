package models

import "time"

// ConnectedAccount trạng thái kết nối của một nền tảng
type ConnectedAccount struct {
	Connected bool    `json:"connected" bson:"connected"`
	Username  *string `json:"username" bson:"username"` // null khi chưa kết nối
}

// ConnectedAccounts trạng thái kết nối của các nền tảng được hỗ trợ
type ConnectedAccounts struct {
	Instagram      ConnectedAccount `json:"instagram" bson:"instagram"`
	Facebook       ConnectedAccount `json:"facebook" bson:"facebook"`
	GoogleBusiness ConnectedAccount `json:"googleBusiness" bson:"googleBusiness"`
}

// BusinessProfile hồ sơ doanh nghiệp của người dùng.
// Mỗi deployment chỉ có một profile document.
type BusinessProfile struct {
	ID                string            `json:"id" bson:"_id"`
	BusinessName      string            `json:"businessName" bson:"businessName"`
	BusinessType      string            `json:"businessType" bson:"businessType"`
	Address           string            `json:"address" bson:"address"`
	Phone             string            `json:"phone" bson:"phone"`
	Email             string            `json:"email" bson:"email"`
	ConnectedAccounts ConnectedAccounts `json:"connectedAccounts" bson:"connectedAccounts"`

	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt"`
}

// DefaultProfile trả về profile mẫu khi chưa có profile nào được lưu
func DefaultProfile(id string) BusinessProfile {
	instagram := "@samplebusiness"
	return BusinessProfile{
		ID:           id,
		BusinessName: "Sample Business",
		BusinessType: "restaurant",
		Address:      "123 Main St, City, State",
		Phone:        "(555) 123-4567",
		Email:        "contact@samplebusiness.com",
		ConnectedAccounts: ConnectedAccounts{
			Instagram:      ConnectedAccount{Connected: true, Username: &instagram},
			Facebook:       ConnectedAccount{Connected: false, Username: nil},
			GoogleBusiness: ConnectedAccount{Connected: false, Username: nil},
		},
	}
}
