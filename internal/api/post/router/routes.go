// Package router đăng ký các route thuộc domain Post.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/strategistayub/SocialProFlow/internal/api/middleware"
	posthdl "github.com/strategistayub/SocialProFlow/internal/api/post/handler"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// Register trả về RegisterFunc đăng ký route post lên /api với handler đã wire sẵn.
// Route tĩnh (/counts) đăng ký trước route param (/:id).
func Register(h *posthdl.PostHandler) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		var mws []fiber.Handler
		if global.ServerConfig != nil && global.ServerConfig.AuthEnabled {
			mws = append(mws, middleware.SessionMiddleware(global.ServerConfig.JwtSecret))
		}

		apirouter.RegisterRouteWithMiddleware(api, "/posts", "GET", "/", mws, h.HandleList)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "GET", "/counts", mws, h.HandleCounts)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "GET", "/:id", mws, h.HandleGet)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/", mws, h.HandleCreate)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "PUT", "/:id", mws, h.HandleUpdate)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "DELETE", "/:id", mws, h.HandleDelete)

		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/publish", mws, h.HandlePublish)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/retry", mws, h.HandleRetry)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/pause", mws, h.HandlePause)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/resume", mws, h.HandleResume)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/fail", mws, h.HandleFail)
		apirouter.RegisterRouteWithMiddleware(api, "/posts", "POST", "/:id/engagement", mws, h.HandleEngagement)

		return nil
	}
}
