// package analyticshdl trả về số liệu analytics tổng hợp.
// Payload là dữ liệu tĩnh dựng sẵn, chưa tính toán từ post thật.
package analyticshdl

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// DefaultTimeframe là số ngày mặc định cho analytics query
const DefaultTimeframe = "30"

// AnalyticsHandler xử lý route /api/analytics
type AnalyticsHandler struct{}

// NewAnalyticsHandler tạo handler
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// HandleGet GET /api/analytics?timeframe=<days>
// Trả về {success, analytics} với payload tổng hợp
func (h *AnalyticsHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		_ = c.Query("timeframe", DefaultTimeframe)

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success":   true,
			"analytics": buildAnalytics(),
		})
	})
}

// buildAnalytics dựng payload analytics tổng hợp
func buildAnalytics() fiber.Map {
	return fiber.Map{
		"overview": fiber.Map{
			"totalPosts":      247,
			"totalReach":      15624,
			"totalEngagement": 1934,
			"followerGrowth":  12.5,
		},
		"engagement": fiber.Map{
			"likes":             1245,
			"comments":          456,
			"shares":            233,
			"avgEngagementRate": 12.5,
		},
		"platforms": fiber.Map{
			"instagram":      fiber.Map{"posts": 89, "reach": 8924, "engagement": 1124},
			"facebook":       fiber.Map{"posts": 67, "reach": 4567, "engagement": 567},
			"googleBusiness": fiber.Map{"posts": 23, "reach": 2133, "engagement": 243},
		},
		"topPosts": []fiber.Map{
			{
				"id":         uuid.NewString(),
				"content":    "Summer special menu launch! 🌞",
				"platform":   "instagram",
				"engagement": 234,
				"reach":      1890,
			},
		},
	}
}
