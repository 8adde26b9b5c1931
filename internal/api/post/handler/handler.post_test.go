package posthdl_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	posthdl "github.com/strategistayub/SocialProFlow/internal/api/post/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	postrouter "github.com/strategistayub/SocialProFlow/internal/api/post/router"
	postsvc "github.com/strategistayub/SocialProFlow/internal/api/post/service"
	poststore "github.com/strategistayub/SocialProFlow/internal/api/post/store"
	apirouter "github.com/strategistayub/SocialProFlow/internal/api/router"
	"github.com/strategistayub/SocialProFlow/internal/publisher"
)

// newTestApp dựng fiber app với route table thật trên memory store
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := poststore.NewMemoryPostStore()
	service := postsvc.NewPostService(store, publisher.NewLogPublisher())
	handler := posthdl.NewPostHandler(service)

	app := fiber.New()
	require.NoError(t, apirouter.SetupRoutes(app, postrouter.Register(handler)))
	return app
}

// doRequest gửi request và decode JSON response body
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// createPost helper tạo post qua HTTP, trả về post map trong response
func createPost(t *testing.T, app *fiber.App, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	code, resp := doRequest(t, app, http.MethodPost, "/api/posts", body)
	require.Equal(t, http.StatusOK, code, "create failed: %v", resp)
	require.Equal(t, true, resp["success"])
	return resp["post"].(map[string]interface{})
}

func TestRootEndpoint(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SocialFlow Pro API is running!", resp["message"])
	assert.Equal(t, "1.0.0", resp["version"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestUnknownEndpointReturns404(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Endpoint not found", resp["error"])
}

func TestCreateScheduledPost(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodPost, "/api/posts", map[string]interface{}{
		"content":   "Happy Friday everyone! What are your weekend plans? 🎉",
		"platforms": []string{"instagram"},
	})
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Post scheduled successfully!", resp["message"])

	post := resp["post"].(map[string]interface{})
	assert.Equal(t, models.StatusScheduled, post["status"])
	assert.NotEmpty(t, post["id"])
	assert.Nil(t, post["publishedAt"]) // chưa publish thì publishedAt là null
	assert.NotNil(t, post["images"])

	engagement := post["engagement"].(map[string]interface{})
	assert.EqualValues(t, 0, engagement["likes"])
}

func TestCreateAndPublishImmediately(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodPost, "/api/posts", map[string]interface{}{
		"content":   "Check out our delicious new summer menu! 🌞🍽️",
		"platforms": []string{"instagram", "facebook"},
		"action":    "publish",
	})
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "Post published successfully!", resp["message"])
	post := resp["post"].(map[string]interface{})
	assert.Equal(t, models.StatusPublished, post["status"])
	assert.NotNil(t, post["publishedAt"])
}

func TestCreateValidationError(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodPost, "/api/posts", map[string]interface{}{
		"platforms": []string{"instagram"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid input data", resp["error"])
	assert.NotEmpty(t, resp["details"])
}

func TestListPostsWithStatusFilter(t *testing.T) {
	app := newTestApp(t)

	createPost(t, app, map[string]interface{}{
		"content":   "scheduled one",
		"platforms": []string{"instagram"},
	})
	createPost(t, app, map[string]interface{}{
		"content":   "scheduled two",
		"platforms": []string{"facebook"},
	})
	createPost(t, app, map[string]interface{}{
		"content":   "published one",
		"platforms": []string{"instagram"},
		"action":    "publish",
	})

	code, resp := doRequest(t, app, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, resp["total"])
	assert.Len(t, resp["posts"], 3)

	code, resp = doRequest(t, app, http.MethodGet, "/api/posts?status=published", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, resp["total"])

	code, resp = doRequest(t, app, http.MethodGet, "/api/posts?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["error"], "Invalid status filter")
}

func TestCountsEndpoint(t *testing.T) {
	app := newTestApp(t)

	createPost(t, app, map[string]interface{}{
		"content":   "scheduled",
		"platforms": []string{"instagram"},
	})
	createPost(t, app, map[string]interface{}{
		"content":   "published",
		"platforms": []string{"instagram"},
		"action":    "publish",
	})

	code, resp := doRequest(t, app, http.MethodGet, "/api/posts/counts", nil)
	require.Equal(t, http.StatusOK, code)

	counts := resp["counts"].(map[string]interface{})
	assert.EqualValues(t, 2, counts["all"])
	assert.EqualValues(t, 1, counts["scheduled"])
	assert.EqualValues(t, 1, counts["published"])
	assert.EqualValues(t, 0, counts["failed"])
	assert.EqualValues(t, 0, counts["paused"])
}

func TestGetPostNotFound(t *testing.T) {
	app := newTestApp(t)

	code, resp := doRequest(t, app, http.MethodGet, "/api/posts/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Resource not found", resp["error"])
}

func TestUpdatePostPartial(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, map[string]interface{}{
		"content":   "original",
		"platforms": []string{"instagram", "facebook"},
	})
	id := post["id"].(string)

	code, resp := doRequest(t, app, http.MethodPut, "/api/posts/"+id, map[string]interface{}{
		"content": "edited",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Post updated successfully!", resp["message"])

	updated := resp["post"].(map[string]interface{})
	assert.Equal(t, "edited", updated["content"])
	assert.Len(t, updated["platforms"], 2) // field không gửi giữ nguyên
}

func TestDeletePost(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, map[string]interface{}{
		"content":   "to delete",
		"platforms": []string{"instagram"},
	})
	id := post["id"].(string)

	code, resp := doRequest(t, app, http.MethodDelete, "/api/posts/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Post deleted successfully!", resp["message"])

	code, _ = doRequest(t, app, http.MethodGet, "/api/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLifecycleEndpoints(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, map[string]interface{}{
		"content":   "lifecycle",
		"platforms": []string{"instagram"},
	})
	id := post["id"].(string)

	// pause -> paused
	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/pause", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusPaused, resp["post"].(map[string]interface{})["status"])

	// publish trên post paused là invalid
	code, resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/publish", id), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp["error"], "Cannot publish a paused post")

	// resume -> scheduled
	code, resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/resume", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusScheduled, resp["post"].(map[string]interface{})["status"])

	// fail -> failed
	code, resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/fail", id), map[string]interface{}{
		"reason": "token expired",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusFailed, resp["post"].(map[string]interface{})["status"])

	// retry -> scheduled lại với message schedule
	code, resp = doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/retry", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Post scheduled successfully!", resp["message"])
	assert.Equal(t, models.StatusScheduled, resp["post"].(map[string]interface{})["status"])
}

func TestEngagementEndpoint(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, map[string]interface{}{
		"content":   "engagement",
		"platforms": []string{"instagram"},
		"action":    "publish",
	})
	id := post["id"].(string)

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/engagement", id), map[string]interface{}{
		"likes":    45,
		"comments": 12,
		"shares":   8,
	})
	require.Equal(t, http.StatusOK, code)

	engagement := resp["post"].(map[string]interface{})["engagement"].(map[string]interface{})
	assert.EqualValues(t, 45, engagement["likes"])
	assert.EqualValues(t, 12, engagement["comments"])
	assert.EqualValues(t, 8, engagement["shares"])
}

func TestEngagementRejectedBeforePublish(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, map[string]interface{}{
		"content":   "still scheduled",
		"platforms": []string{"instagram"},
	})
	id := post["id"].(string)

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%s/engagement", id), map[string]interface{}{
		"likes": 7,
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cannot record engagement for a scheduled post", resp["error"])
}
