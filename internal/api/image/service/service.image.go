// package imagesvc quản lý thư viện ảnh (metadata only)
package imagesvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/strategistayub/SocialProFlow/internal/api/base/service"
	"github.com/strategistayub/SocialProFlow/internal/api/image/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/image/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Giá trị mặc định khi upload không kèm metadata
const (
	DefaultFilename  = "uploaded-image.jpg"
	DefaultURL       = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&h=600&fit=crop"
	DefaultThumbnail = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=200&h=200&fit=crop"
	DefaultCategory  = "Uncategorized"
	DefaultSize      = "2.1MB"
)

// ImageService quản lý image asset trên collection images
type ImageService struct {
	base basesvc.BaseServiceMongo[models.ImageAsset]
}

// NewImageService tạo service với base service đã gắn collection
func NewImageService(base basesvc.BaseServiceMongo[models.ImageAsset]) *ImageService {
	return &ImageService{base: base}
}

// List trả về tất cả ảnh, mới upload trước
func (s *ImageService) List(ctx context.Context) ([]models.ImageAsset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	return s.base.Find(ctx, nil, opts)
}

// Insert lưu trực tiếp một asset đã dựng sẵn (dùng khi seed dữ liệu mẫu)
func (s *ImageService) Insert(ctx context.Context, image models.ImageAsset) (models.ImageAsset, error) {
	return s.base.InsertOne(ctx, image)
}

// RegisterUpload đăng ký metadata của ảnh mới, áp dụng giá trị mặc định cho field rỗng
func (s *ImageService) RegisterUpload(ctx context.Context, input imagedto.ImageUploadInput) (models.ImageAsset, error) {
	if global.Validate == nil {
		global.InitValidator()
	}
	if err := global.Validate.Struct(input); err != nil {
		return models.ImageAsset{}, common.NewError(
			common.ErrCodeValidationInput,
			"Invalid input data",
			common.StatusBadRequest,
			err.Error(),
		)
	}

	image := models.ImageAsset{
		ID:         uuid.NewString(),
		Filename:   input.Filename,
		URL:        input.URL,
		Thumbnail:  input.Thumbnail,
		Category:   input.Category,
		UploadedAt: time.Now(),
		Size:       DefaultSize,
	}
	if image.Filename == "" {
		image.Filename = DefaultFilename
	}
	if image.URL == "" {
		image.URL = DefaultURL
	}
	if image.Thumbnail == "" {
		image.Thumbnail = DefaultThumbnail
	}
	if image.Category == "" {
		image.Category = DefaultCategory
	}

	return s.base.InsertOne(ctx, image)
}
