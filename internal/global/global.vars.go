package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/strategistayub/SocialProFlow/config"
	"github.com/strategistayub/SocialProFlow/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Posts    string // Tên collection cho bài đăng
	Images   string // Tên collection cho thư viện ảnh
	Profiles string // Tên collection cho hồ sơ doanh nghiệp
}

// Các biến toàn cục
var Validate *validator.Validate           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration     // Cấu hình của server
var ColNames = CollectionName{             // Tên các collection
	Posts:    "posts",
	Images:   "images",
	Profiles: "profiles",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
