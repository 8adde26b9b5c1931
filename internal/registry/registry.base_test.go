package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("posts", "collection-posts")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký lại cùng tên ghi đè item cũ, isNew = false
	isNew, err = r.Register("posts", "other")
	require.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("posts")
	assert.True(t, exists)
	assert.Equal(t, "other", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	item, err := r.GetOrCreate("answer", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả về item đã có, không gọi lại creator
	item, err = r.GetOrCreate("answer", creator)
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)

	_, err = r.GetOrCreate("broken", func() (int, error) {
		return 0, errors.New("cannot create")
	})
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("a", "1")
	require.NoError(t, err)

	deleted, err := r.Clear("a", nil)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, exists := r.Get("a")
	assert.False(t, exists)
}
