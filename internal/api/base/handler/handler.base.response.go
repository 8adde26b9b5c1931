// package basehdl chứa các helper dùng chung cho handler: response, error mapping, recover
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// để hỗ trợ UTF-8 encoding đúng cách trên mọi response
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleError chuẩn hóa error response cho client.
// Lỗi thuộc taxonomy (common.Error) trả về status code tương ứng với body {error: message};
// lỗi 5xx và lỗi không xác định trả về {error: "Internal server error", message: ...}.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Internal error")
			return JSONResponse(c, customErr.StatusCode, fiber.Map{
				"error":   "Internal server error",
				"message": customErr.Message,
			})
		}

		body := fiber.Map{"error": customErr.Message}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}

// SafeHandler bọc handler với recover để server luôn trả về response cho client,
// kể cả khi có panic xảy ra trong quá trình xử lý.
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()

			_ = HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}
