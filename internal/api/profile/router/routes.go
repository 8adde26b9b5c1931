// Package router đăng ký các route thuộc domain Profile.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/strategistayub/SocialProFlow/internal/api/middleware"
	profilehdl "github.com/strategistayub/SocialProFlow/internal/api/profile/handler"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Register trả về RegisterFunc đăng ký route profile lên /api
func Register(h *profilehdl.ProfileHandler) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		var mws []fiber.Handler
		if global.ServerConfig != nil && global.ServerConfig.AuthEnabled {
			mws = append(mws, middleware.SessionMiddleware(global.ServerConfig.JwtSecret))
		}

		apirouter.RegisterRouteWithMiddleware(api, "/profile", "GET", "/", mws, h.HandleGet)
		apirouter.RegisterRouteWithMiddleware(api, "/profile", "POST", "/", mws, h.HandleSave)

		return nil
	}
}
