// package posthdl chứa HTTP handler cho post API
package posthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/strategistayub/SocialProFlow/internal/api/base/handler"
	"github.com/strategistayub/SocialProFlow/internal/api/post/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	postsvc "github.com/strategistayub/SocialProFlow/internal/api/post/service"
	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// PostHandler xử lý các route /api/posts
type PostHandler struct {
	service *postsvc.PostService
}

// NewPostHandler tạo handler với service đã khởi tạo
func NewPostHandler(service *postsvc.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// HandleList GET /api/posts?status=<status>
// Trả về {success, posts, total}; posts sắp xếp scheduledAt giảm dần
func (h *PostHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		status := c.Query("status", postsvc.StatusAll)

		posts, err := h.service.ListByStatus(c.Context(), status)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"posts":   posts,
			"total":   len(posts),
		})
	})
}

// HandleCounts GET /api/posts/counts
// Trả về {success, counts} với counts theo từng trạng thái và tổng "all"
func (h *PostHandler) HandleCounts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		counts, err := h.service.CountByStatus(c.Context())
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"counts":  counts,
		})
	})
}

// HandleGet GET /api/posts/:id
func (h *PostHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		post, err := h.service.Get(c.Context(), c.Params("id"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
		})
	})
}

// HandleCreate POST /api/posts
// Body: {content, platforms, action, scheduledAt, images}
// action=publish publish ngay, mặc định schedule
func (h *PostHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input postdto.PostCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		post, message, err := h.service.Create(c.Context(), input)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		logger.WithRequest(c).WithFields(map[string]interface{}{
			"post_id": post.ID,
			"status":  post.Status,
		}).Info("Post created")

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
			"message": message,
		})
	})
}

// HandleUpdate PUT /api/posts/:id
// Partial update: field không gửi giữ nguyên giá trị cũ
func (h *PostHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input postdto.PostUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		post, err := h.service.Update(c.Context(), c.Params("id"), input)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
			"message": postsvc.MsgUpdated,
		})
	})
}

// HandleDelete DELETE /api/posts/:id
func (h *PostHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"message": postsvc.MsgDeleted,
		})
	})
}

// HandlePublish POST /api/posts/:id/publish
// Publish thủ công post scheduled; response chứa trạng thái kết quả (published hoặc failed)
func (h *PostHandler) HandlePublish(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		post, err := h.service.Publish(c.Context(), c.Params("id"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		message := postsvc.MsgPublished
		if post.Status != models.StatusPublished {
			message = postsvc.MsgFailed
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
			"message": message,
		})
	})
}

// HandleRetry POST /api/posts/:id/retry
// Đưa post failed trở lại scheduled với lịch mới lùi theo backoff
func (h *PostHandler) HandleRetry(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		post, err := h.service.Retry(c.Context(), c.Params("id"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
			"message": postsvc.MsgScheduled,
		})
	})
}

// HandlePause POST /api/posts/:id/pause
func (h *PostHandler) HandlePause(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		post, err := h.service.Pause(c.Context(), c.Params("id"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
		})
	})
}

// HandleResume POST /api/posts/:id/resume
func (h *PostHandler) HandleResume(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		post, err := h.service.Resume(c.Context(), c.Params("id"))
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
		})
	})
}

// HandleFail POST /api/posts/:id/fail
// Collaborator bên ngoài báo publish thất bại cho post scheduled
func (h *PostHandler) HandleFail(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input postdto.PostFailInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		post, err := h.service.MarkFailed(c.Context(), c.Params("id"), input.Reason)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
		})
	})
}

// HandleEngagement POST /api/posts/:id/engagement
// Cập nhật chỉ số tương tác từ analytics feed (counter không giảm)
func (h *PostHandler) HandleEngagement(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input postdto.EngagementInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidInput)
		}

		post, err := h.service.RecordEngagement(c.Context(), c.Params("id"), input)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": true,
			"post":    post,
		})
	})
}
