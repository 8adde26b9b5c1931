package poststore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strategistayub/SocialProFlow/internal/api/post/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

func samplePost(id string) models.Post {
	return models.Post{
		ID:          id,
		Content:     "content for " + id,
		Platforms:   []string{models.PlatformInstagram},
		Images:      []string{},
		Status:      models.StatusScheduled,
		ScheduledAt: time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestMemoryStoreInsertAndGet(t *testing.T) {
	store := NewMemoryPostStore()
	ctx := context.Background()

	inserted, err := store.Insert(ctx, samplePost("p1"))
	require.NoError(t, err)
	assert.NotZero(t, inserted.Seq)

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, inserted, got)
}

func TestMemoryStoreInsertDuplicate(t *testing.T) {
	store := NewMemoryPostStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, samplePost("p1"))
	require.NoError(t, err)

	_, err = store.Insert(ctx, samplePost("p1"))
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := NewMemoryPostStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStoreUpdatePreservesSeq(t *testing.T) {
	store := NewMemoryPostStore()
	ctx := context.Background()

	inserted, err := store.Insert(ctx, samplePost("p1"))
	require.NoError(t, err)

	changed := inserted
	changed.Content = "edited"
	changed.Seq = 0 // caller không biết seq, store phải giữ giá trị cũ

	updated, err := store.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, inserted.Seq, updated.Seq)
}

func TestMemoryStoreUpdateNotFound(t *testing.T) {
	store := NewMemoryPostStore()

	_, err := store.Update(context.Background(), samplePost("missing"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryPostStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, samplePost("p1"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "p1"))
	assert.ErrorIs(t, store.Delete(ctx, "p1"), common.ErrNotFound)

	_, err = store.Get(ctx, "p1")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	store := NewMemoryPostStore()
	ctx := context.Background()

	ids := []string{"p1", "p2", "p3"}
	for _, id := range ids {
		_, err := store.Insert(ctx, samplePost(id))
		require.NoError(t, err)
	}

	// Update không làm đổi vị trí trong thứ tự duyệt
	p2, err := store.Get(ctx, "p2")
	require.NoError(t, err)
	p2.Content = "edited"
	_, err = store.Update(ctx, p2)
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, all[i].ID)
	}

	// Xóa giữa danh sách giữ nguyên thứ tự phần còn lại
	require.NoError(t, store.Delete(ctx, "p2"))
	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p3", all[1].ID)
}
