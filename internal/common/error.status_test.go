package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIsSentinel(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Resource not found", StatusNotFound, nil)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestErrorAsExposesStatusCode(t *testing.T) {
	err := NewError(ErrCodeBusinessState, "Cannot publish a paused post", StatusBadRequest, nil)

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, ErrCodeBusinessState.Code, appErr.Code.Code)
	assert.Equal(t, "Cannot publish a paused post", appErr.Error())
}

func TestConvertMongoError(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))

	assert.ErrorIs(t, ConvertMongoError(mongo.ErrNoDocuments), ErrNotFound)

	// Lỗi đã thuộc taxonomy thì giữ nguyên, không convert lại
	assert.ErrorIs(t, ConvertMongoError(ErrDuplicate), ErrDuplicate)

	converted := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	require.ErrorAs(t, converted, &appErr)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
}
