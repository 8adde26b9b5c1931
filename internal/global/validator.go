package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// supportedPlatforms là danh sách nền tảng được hỗ trợ cho validator "platform"
var supportedPlatforms = map[string]bool{
	"instagram":       true,
	"facebook":        true,
	"google-business": true,
}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("platform", validatePlatform)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
}

// validatePlatform kiểm tra giá trị có thuộc danh sách nền tảng hỗ trợ không.
// Dùng cho field platforms của post: validate:"dive,platform"
func validatePlatform(fl validator.FieldLevel) bool {
	return supportedPlatforms[fl.Field().String()]
}

// validateNoXSS kiểm tra XSS trên nội dung do người dùng nhập
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
