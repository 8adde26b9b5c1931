// package imagehdl chứa HTTP handler cho image API
package imagehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/image/dto"
	imagesvc "github.com/strategistayub/SocialProFlow/internal/api/image/service"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// ImageHandler xử lý các route /api/images
type ImageHandler struct {
	service *imagesvc.ImageService
}

// NewImageHandler tạo handler với service đã khởi tạo
func NewImageHandler(service *imagesvc.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// HandleList GET /api/images
// Trả về {success, images}
func (h *ImageHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		images, err := h.service.List(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"images":  images,
		})
	})
}

// HandleUpload POST /api/images/upload
// Đăng ký metadata ảnh mới, trả về {success, image, message}
func (h *ImageHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input imagedto.ImageUploadInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		image, err := h.service.RegisterUpload(c.Context(), input)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"image":   image,
			"message": "Image uploaded successfully!",
		})
	})
}
