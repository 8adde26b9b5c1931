// Package router đăng ký các route thuộc domain Image.
package router

import (
	"github.com/gofiber/fiber/v3"

	imagehdl "github.com/strategistayub/SocialProFlow/internal/api/image/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/middleware"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Register trả về RegisterFunc đăng ký route image lên /api
func Register(h *imagehdl.ImageHandler) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		var mws []fiber.Handler
		if global.ServerConfig != nil && global.ServerConfig.AuthEnabled {
			mws = append(mws, middleware.SessionMiddleware(global.ServerConfig.JwtSecret))
		}

		apirouter.RegisterRouteWithMiddleware(api, "/images", "GET", "/", mws, h.HandleList)
		apirouter.RegisterRouteWithMiddleware(api, "/images", "POST", "/upload", mws, h.HandleUpload)

		return nil
	}
}
