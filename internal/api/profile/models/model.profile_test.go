package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile("profile-1")

	assert.Equal(t, "profile-1", profile.ID)
	assert.Equal(t, "Sample Business", profile.BusinessName)
	assert.Equal(t, "restaurant", profile.BusinessType)

	// Chỉ instagram kết nối sẵn trong profile mẫu
	assert.True(t, profile.ConnectedAccounts.Instagram.Connected)
	require.NotNil(t, profile.ConnectedAccounts.Instagram.Username)
	assert.Equal(t, "@samplebusiness", *profile.ConnectedAccounts.Instagram.Username)

	assert.False(t, profile.ConnectedAccounts.Facebook.Connected)
	assert.Nil(t, profile.ConnectedAccounts.Facebook.Username)
	assert.False(t, profile.ConnectedAccounts.GoogleBusiness.Connected)
	assert.Nil(t, profile.ConnectedAccounts.GoogleBusiness.Username)
}
