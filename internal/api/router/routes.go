// Package router quản lý việc định tuyến cho API.
// Route table là tường minh: mỗi domain export một RegisterFunc đăng ký
// method + path + handler của mình lên group /api.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() method.
//
// ⚠️ QUAN TRỌNG: Fiber v3 không gọi middleware khi truyền trực tiếp trong route
// (router.Get(path, middleware, handler) bỏ qua middleware). Cách duy nhất hoạt động
// đúng là tạo group với prefix rồi gắn middleware bằng .Use().
//
// Ví dụ sử dụng:
//
//	sessionMiddleware := middleware.SessionMiddleware(secret)
//	RegisterRouteWithMiddleware(router, "/posts", "GET", "/", []fiber.Handler{sessionMiddleware}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Middleware chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path tương đối, prefix đã có trong group
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
// Route không khớp trả về 404 {error: "Endpoint not found"}.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app)

	systemHandler := basehdl.NewSystemHandler()
	api.Get("/", systemHandler.HandleRoot)
	api.Get("/health", systemHandler.HandleHealth)

	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}

	// Fallback cho mọi route không khớp
	app.Use(func(c fiber.Ctx) error {
		return basehdl.JSONResponse(c, common.StatusNotFound, fiber.Map{
			"error": "Endpoint not found",
		})
	})

	return nil
}
