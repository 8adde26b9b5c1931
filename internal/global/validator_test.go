package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type platformInput struct {
	Platforms []string `validate:"required,min=1,dive,platform"`
}

type contentInput struct {
	Content string `validate:"required,no_xss"`
}

func TestValidatePlatform(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(platformInput{Platforms: []string{"instagram", "facebook", "google-business"}}))

	assert.Error(t, Validate.Struct(platformInput{Platforms: []string{"twitter"}}))
	assert.Error(t, Validate.Struct(platformInput{Platforms: []string{}}))
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(contentInput{Content: "Check out our new summer menu! 🌞"}))

	dangerous := []string{
		"<script>alert(1)</script>",
		"click javascript:alert(1)",
		"<img onerror=steal()>",
		"<iframe src=x>",
	}
	for _, content := range dangerous {
		assert.Error(t, Validate.Struct(contentInput{Content: content}), "should reject %q", content)
	}
}
