package analyticshdl_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticshdl "github.com/strategistayub/SocialProFlow/internal/api/analytics/handler"
	analyticsrouter "github.com/strategistayub/SocialProFlow/internal/api/analytics/router"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
)

func TestAnalyticsEndpoint(t *testing.T) {
	app := fiber.New()
	require.NoError(t, apirouter.SetupRoutes(app,
		analyticsrouter.Register(analyticshdl.NewAnalyticsHandler()),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/analytics?timeframe=7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	assert.Equal(t, true, decoded["success"])

	analytics := decoded["analytics"].(map[string]interface{})
	overview := analytics["overview"].(map[string]interface{})
	assert.EqualValues(t, 247, overview["totalPosts"])
	assert.EqualValues(t, 15624, overview["totalReach"])

	platforms := analytics["platforms"].(map[string]interface{})
	require.Contains(t, platforms, "instagram")
	require.Contains(t, platforms, "facebook")
	require.Contains(t, platforms, "googleBusiness")

	topPosts := analytics["topPosts"].([]interface{})
	require.Len(t, topPosts, 1)
	first := topPosts[0].(map[string]interface{})
	assert.NotEmpty(t, first["id"])
	assert.Equal(t, "instagram", first["platform"])
}
