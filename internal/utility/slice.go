package utility

import "strings"

// SplitAndTrim tách chuỗi theo separator, trim khoảng trắng và bỏ phần tử rỗng.
// Dùng cho các config dạng danh sách phân cách bằng dấu phẩy (origins, emails).
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
