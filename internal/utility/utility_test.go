package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim("a, b ,c", ","))
	assert.Equal(t, []string{"one"}, SplitAndTrim("  one  ", ","))
	assert.Empty(t, SplitAndTrim("", ","))
	assert.Empty(t, SplitAndTrim(" , , ", ","))
}

func TestToMap(t *testing.T) {
	type doc struct {
		ID      string `bson:"_id"`
		Content string `bson:"content"`
		Hidden  string `bson:"-"`
	}

	m, err := ToMap(doc{ID: "p1", Content: "hello", Hidden: "x"})
	require.NoError(t, err)

	assert.Equal(t, "p1", m["_id"])
	assert.Equal(t, "hello", m["content"])
	assert.NotContains(t, m, "Hidden")
}

func TestToMapPassthrough(t *testing.T) {
	input := map[string]interface{}{"k": "v"}

	m, err := ToMap(input)
	require.NoError(t, err)
	assert.Equal(t, input, m)
}
