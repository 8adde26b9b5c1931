package imagedto

// ImageUploadInput dữ liệu đầu vào khi đăng ký ảnh mới.
// Field rỗng nhận giá trị mặc định (giữ hành vi upload mock).
type ImageUploadInput struct {
	Filename  string `json:"filename,omitempty"`
	URL       string `json:"url,omitempty" validate:"omitempty,url"`
	Thumbnail string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Category  string `json:"category,omitempty"`
}
