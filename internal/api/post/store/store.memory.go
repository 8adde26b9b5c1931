package poststore

import (
	"context"
	"sync"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// MemoryPostStore lưu post trong bộ nhớ, thread-safe.
// Dùng cho test và chạy thử không cần MongoDB.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[string]models.Post
	order []string // thứ tự insert của các id
	seq   int64
}

// NewMemoryPostStore tạo store in-memory rỗng
func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{
		posts: make(map[string]models.Post),
	}
}

// Insert tạo post mới. Trả về ErrDuplicate nếu id đã tồn tại.
func (s *MemoryPostStore) Insert(ctx context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[post.ID]; exists {
		return models.Post{}, common.ErrDuplicate
	}

	s.seq++
	post.Seq = s.seq
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
	return post, nil
}

// Get lấy post theo id. Trả về ErrNotFound nếu không tồn tại.
func (s *MemoryPostStore) Get(ctx context.Context, id string) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, exists := s.posts[id]
	if !exists {
		return models.Post{}, common.ErrNotFound
	}
	return post, nil
}

// Update thay thế nội dung post theo post.ID, giữ nguyên seq cũ.
func (s *MemoryPostStore) Update(ctx context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.posts[post.ID]
	if !exists {
		return models.Post{}, common.ErrNotFound
	}

	post.Seq = existing.Seq
	s.posts[post.ID] = post
	return post, nil
}

// Delete xóa post theo id. Trả về ErrNotFound nếu không tồn tại.
func (s *MemoryPostStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[id]; !exists {
		return common.ErrNotFound
	}

	delete(s.posts, id)
	for i, existingID := range s.order {
		if existingID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List trả về tất cả post theo thứ tự insert
func (s *MemoryPostStore) List(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.posts[id])
	}
	return result, nil
}
