package imagesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/strategistayub/SocialProFlow/internal/api/image/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/image/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// fakeImageBase giả lập base service bằng slice trong bộ nhớ
type fakeImageBase struct {
	items []models.ImageAsset
}

func (f *fakeImageBase) InsertOne(ctx context.Context, data models.ImageAsset) (models.ImageAsset, error) {
	f.items = append(f.items, data)
	return data, nil
}

func (f *fakeImageBase) InsertMany(ctx context.Context, data []models.ImageAsset) ([]models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.ImageAsset, error) {
	return f.items, nil
}

func (f *fakeImageBase) FindOneById(ctx context.Context, id string) (models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) UpdateById(ctx context.Context, id string, data interface{}) (models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) Upsert(ctx context.Context, filter interface{}, data interface{}) (models.ImageAsset, error) {
	panic("not used")
}

func (f *fakeImageBase) DeleteOne(ctx context.Context, filter interface{}) error { panic("not used") }

func (f *fakeImageBase) DeleteById(ctx context.Context, id string) error { panic("not used") }

func (f *fakeImageBase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	panic("not used")
}

func (f *fakeImageBase) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	panic("not used")
}

func TestRegisterUploadAppliesDefaults(t *testing.T) {
	base := &fakeImageBase{}
	s := NewImageService(base)

	image, err := s.RegisterUpload(context.Background(), imagedto.ImageUploadInput{})
	require.NoError(t, err)

	assert.NotEmpty(t, image.ID)
	assert.Equal(t, DefaultFilename, image.Filename)
	assert.Equal(t, DefaultURL, image.URL)
	assert.Equal(t, DefaultThumbnail, image.Thumbnail)
	assert.Equal(t, DefaultCategory, image.Category)
	assert.Equal(t, DefaultSize, image.Size)
	assert.False(t, image.UploadedAt.IsZero())
	require.Len(t, base.items, 1)
}

func TestRegisterUploadKeepsProvidedMetadata(t *testing.T) {
	base := &fakeImageBase{}
	s := NewImageService(base)

	image, err := s.RegisterUpload(context.Background(), imagedto.ImageUploadInput{
		Filename:  "autumn-menu.jpg",
		URL:       "https://example.com/autumn-menu.jpg",
		Thumbnail: "https://example.com/autumn-menu-thumb.jpg",
		Category:  "Food",
	})
	require.NoError(t, err)

	assert.Equal(t, "autumn-menu.jpg", image.Filename)
	assert.Equal(t, "https://example.com/autumn-menu.jpg", image.URL)
	assert.Equal(t, "Food", image.Category)
}

func TestRegisterUploadRejectsInvalidURL(t *testing.T) {
	base := &fakeImageBase{}
	s := NewImageService(base)

	_, err := s.RegisterUpload(context.Background(), imagedto.ImageUploadInput{
		URL: "not a url",
	})
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
	assert.Empty(t, base.items)
}
