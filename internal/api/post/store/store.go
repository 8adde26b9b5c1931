// package poststore cung cấp các store lưu trữ post: MongoDB cho deployment,
// in-memory cho test và chạy không cần database.
package poststore

import (
	"context"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
)

// PostStore định nghĩa interface lưu trữ post.
// Insert trả về ErrDuplicate nếu id đã tồn tại; Get/Update/Delete trả về
// ErrNotFound nếu id không tồn tại. List trả về post theo thứ tự insert.
type PostStore interface {
	Insert(ctx context.Context, post models.Post) (models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Update(ctx context.Context, post models.Post) (models.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Post, error)
}
