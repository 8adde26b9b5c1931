// Package router đăng ký route thuộc domain Analytics.
package router

import (
	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/strategistayub/SocialProFlow/internal/api/analytics/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/middleware"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Register trả về RegisterFunc đăng ký route analytics lên /api
func Register(h *analyticshdl.AnalyticsHandler) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		var mws []fiber.Handler
		if global.ServerConfig != nil && global.ServerConfig.AuthEnabled {
			mws = append(mws, middleware.SessionMiddleware(global.ServerConfig.JwtSecret))
		}

		apirouter.RegisterRouteWithMiddleware(api, "/analytics", "GET", "/", mws, h.HandleGet)

		return nil
	}
}
