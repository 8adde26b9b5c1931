// package profilesvc quản lý hồ sơ doanh nghiệp (một document duy nhất)
package profilesvc

import (
	"context"
	"errors"

	"github.com/google/uuid"

	basesvc "github.com/strategistayub/SocialProFlow/internal/api/base/service"
	"github.com/strategistayub/SocialProFlow/internal/api/profile/dto"
	"github.com/strategistayub/SocialProFlow/internal/api/profile/models"
	"github.com/strategistayub/SocialProFlow/internal/common"
	"github.com/strategistayub/SocialProFlow/internal/global"
)

// ProfileService quản lý profile trên collection profiles
type ProfileService struct {
	base basesvc.BaseServiceMongo[models.BusinessProfile]
}

// NewProfileService tạo service với base service đã gắn collection
func NewProfileService(base basesvc.BaseServiceMongo[models.BusinessProfile]) *ProfileService {
	return &ProfileService{base: base}
}

// Get trả về profile đã lưu, hoặc profile mẫu nếu chưa có
// (không persist profile mẫu, giữ hành vi get-or-default).
func (s *ProfileService) Get(ctx context.Context) (models.BusinessProfile, error) {
	profile, err := s.base.FindOne(ctx, nil, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.DefaultProfile(uuid.NewString()), nil
		}
		return models.BusinessProfile{}, err
	}
	return profile, nil
}

// Save upsert profile: giữ id của profile hiện có trừ khi input chỉ định id khác
func (s *ProfileService) Save(ctx context.Context, input profiledto.ProfileSaveInput) (models.BusinessProfile, error) {
	if global.Validate == nil {
		global.InitValidator()
	}
	if err := global.Validate.Struct(input); err != nil {
		return models.BusinessProfile{}, common.NewError(
			common.ErrCodeValidationInput,
			"Invalid input data",
			common.StatusBadRequest,
			err.Error(),
		)
	}

	id := input.ID
	if id == "" {
		existing, err := s.base.FindOne(ctx, nil, nil)
		if err == nil {
			id = existing.ID
		} else if errors.Is(err, common.ErrNotFound) {
			id = uuid.NewString()
		} else {
			return models.BusinessProfile{}, err
		}
	}

	accounts := models.ConnectedAccounts{}
	if input.ConnectedAccounts != nil {
		accounts = *input.ConnectedAccounts
	}

	profile := models.BusinessProfile{
		ID:                id,
		BusinessName:      input.BusinessName,
		BusinessType:      input.BusinessType,
		Address:           input.Address,
		Phone:             input.Phone,
		Email:             input.Email,
		ConnectedAccounts: accounts,
	}

	return s.base.Upsert(ctx, map[string]interface{}{"_id": id}, profile)
}
