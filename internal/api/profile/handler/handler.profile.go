// package profilehdl chứa HTTP handler cho profile API
package profilehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/profile/dto"
	profilesvc "github.com/strategistayub/SocialProFlow/internal/api/profile/service"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// ProfileHandler xử lý các route /api/profile
type ProfileHandler struct {
	service *profilesvc.ProfileService
}

// NewProfileHandler tạo handler với service đã khởi tạo
func NewProfileHandler(service *profilesvc.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleGet GET /api/profile
// Trả về {success, profile}; profile mẫu nếu chưa lưu profile nào
func (h *ProfileHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		profile, err := h.service.Get(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"profile": profile,
		})
	})
}

// HandleSave POST /api/profile
// Upsert profile, trả về {success, profile, message}
func (h *ProfileHandler) HandleSave(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input profiledto.ProfileSaveInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		profile, err := h.service.Save(c.Context(), input)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"profile": profile,
			"message": "Profile updated successfully!",
		})
	})
}
