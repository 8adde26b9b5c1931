package models

import "time"

// ImageAsset metadata của một ảnh trong thư viện.
// Chỉ lưu metadata và URL, không lưu binary (upload thật nằm ngoài phạm vi).
type ImageAsset struct {
	ID         string    `json:"id" bson:"_id"`
	Filename   string    `json:"filename" bson:"filename"`
	URL        string    `json:"url" bson:"url"`
	Thumbnail  string    `json:"thumbnail" bson:"thumbnail"`
	Category   string    `json:"category" bson:"category" index:"single:1"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
	Size       string    `json:"size" bson:"size"`

	CreatedAt time.Time `json:"-" bson:"createdAt"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt"`
}
