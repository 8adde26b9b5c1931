package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Version của API, trả về ở route gốc
const Version = "1.0.0"

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct{}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleRoot trả về thông tin cơ bản của API
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"message":   "SocialFlow Pro API is running!",
		"version":   Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HandleHealth kiểm tra tình trạng hệ thống: API và database connection
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			return JSONResponse(c, common.StatusServiceUnavailable, healthData)
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["services"].(fiber.Map)["database"] = "not_configured"
	}

	return JSONResponse(c, common.StatusOK, healthData)
}
