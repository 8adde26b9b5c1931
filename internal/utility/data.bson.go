// Package utility chứa các hàm tiện ích dùng chung giữa các service
package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map[string]interface{} qua BSON marshal/unmarshal.
// Tôn trọng bson tags của struct, dùng cho partial update và insert document.
func ToMap(s interface{}) (map[string]interface{}, error) {
	// Nếu đã là map, trả về luôn
	if m, ok := s.(map[string]interface{}); ok {
		return m, nil
	}

	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}
