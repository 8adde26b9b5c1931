package profilesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/strategistayub/SocialProFlow/internal/api/profile/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/profile/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
)

// fakeProfileBase giả lập base service cho profile document duy nhất
type fakeProfileBase struct {
	stored *models.BusinessProfile
}

func (f *fakeProfileBase) InsertOne(ctx context.Context, data models.BusinessProfile) (models.BusinessProfile, error) {
	f.stored = &data
	return data, nil
}

func (f *fakeProfileBase) InsertMany(ctx context.Context, data []models.BusinessProfile) ([]models.BusinessProfile, error) {
	panic("not used")
}

func (f *fakeProfileBase) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.BusinessProfile, error) {
	if f.stored == nil {
		return models.BusinessProfile{}, common.ErrNotFound
	}
	return *f.stored, nil
}

func (f *fakeProfileBase) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.BusinessProfile, error) {
	panic("not used")
}

func (f *fakeProfileBase) FindOneById(ctx context.Context, id string) (models.BusinessProfile, error) {
	panic("not used")
}

func (f *fakeProfileBase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (models.BusinessProfile, error) {
	panic("not used")
}

func (f *fakeProfileBase) UpdateById(ctx context.Context, id string, data interface{}) (models.BusinessProfile, error) {
	panic("not used")
}

func (f *fakeProfileBase) Upsert(ctx context.Context, filter interface{}, data interface{}) (models.BusinessProfile, error) {
	profile := data.(models.BusinessProfile)
	f.stored = &profile
	return profile, nil
}

func (f *fakeProfileBase) DeleteOne(ctx context.Context, filter interface{}) error { panic("not used") }

func (f *fakeProfileBase) DeleteById(ctx context.Context, id string) error { panic("not used") }

func (f *fakeProfileBase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	panic("not used")
}

func (f *fakeProfileBase) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	panic("not used")
}

func TestGetReturnsDefaultWhenEmpty(t *testing.T) {
	base := &fakeProfileBase{}
	s := NewProfileService(base)

	profile, err := s.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Sample Business", profile.BusinessName)
	assert.NotEmpty(t, profile.ID)
	// Profile mẫu không được persist
	assert.Nil(t, base.stored)
}

func TestSaveThenGet(t *testing.T) {
	base := &fakeProfileBase{}
	s := NewProfileService(base)

	saved, err := s.Save(context.Background(), profiledto.ProfileSaveInput{
		BusinessName: "Bella Vista",
		BusinessType: "restaurant",
		Email:        "hello@bellavista.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bella Vista", saved.BusinessName)
	assert.NotEmpty(t, saved.ID)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Bella Vista", got.BusinessName)
}

func TestSaveKeepsExistingID(t *testing.T) {
	base := &fakeProfileBase{}
	s := NewProfileService(base)

	first, err := s.Save(context.Background(), profiledto.ProfileSaveInput{
		BusinessName: "Bella Vista",
	})
	require.NoError(t, err)

	second, err := s.Save(context.Background(), profiledto.ProfileSaveInput{
		BusinessName: "Bella Vista Trattoria",
	})
	require.NoError(t, err)

	// Save không tạo document mới, giữ id của profile hiện có
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Bella Vista Trattoria", second.BusinessName)
}

func TestSaveValidation(t *testing.T) {
	base := &fakeProfileBase{}
	s := NewProfileService(base)

	_, err := s.Save(context.Background(), profiledto.ProfileSaveInput{
		BusinessName: "Bella Vista",
		Email:        "not-an-email",
	})
	require.Error(t, err)

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}
