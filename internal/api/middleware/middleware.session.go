// Package middleware chứa các middleware dùng cho route /api.
package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// SessionMiddleware kiểm tra bearer token JWT trong header Authorization.
// Token hợp lệ: subject được lưu vào Locals("user_id") cho handler phía sau.
// Chỉ gắn vào route khi AUTH_ENABLED=true; mặc định API mở.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return basehdl.HandleError(c, common.ErrTokenMissing)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return basehdl.HandleError(c, common.ErrTokenMissing)
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return basehdl.HandleError(c, common.ErrTokenInvalid)
		}

		c.Locals("user_id", claims.Subject)
		return c.Next()
	}
}
