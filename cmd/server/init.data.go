package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	imagemodels "github.com/strategistayub/SocialProFlow/internal/api/image/models"
	postmodels "github.com/strategistayub/SocialProFlow/internal/api/post/models"
	postsvc "github.com/strategistayub/SocialProFlow/internal/api/post/service"
	"github.com/strategistayub/SocialProFlow/internal/logger"
)

// InitDefaultData seed dữ liệu mẫu cho môi trường mới: hai post minh họa
// (một published, một scheduled ngày mai) và hai ảnh trong thư viện.
// Chỉ seed khi collection tương ứng đang trống, chạy lại không tạo trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Seed posts mẫu
	log.Info("🔄 [INIT] Step 1: Seeding sample posts...")
	if err := seedSamplePosts(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 1: Failed to seed sample posts")
		log.Warnf("Failed to seed sample posts: %v", err)
	} else {
		log.Info("✅ [INIT] Step 1: Sample posts ready")
	}

	// 2. Seed thư viện ảnh mẫu
	log.Info("🔄 [INIT] Step 2: Seeding sample image library...")
	if err := seedSampleImages(ctx); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 2: Failed to seed sample images")
		log.Warnf("Failed to seed sample images: %v", err)
	} else {
		log.Info("✅ [INIT] Step 2: Sample image library ready")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

// seedSamplePosts tạo hai post mẫu nếu collection posts đang trống
func seedSamplePosts(ctx context.Context) error {
	existing, err := postService.ListByStatus(ctx, postsvc.StatusAll)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	publishedAt := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	samples := []postmodels.Post{
		{
			ID:          uuid.NewString(),
			Content:     "Check out our delicious new summer menu! 🌞🍽️",
			Platforms:   []string{postmodels.PlatformInstagram, postmodels.PlatformFacebook},
			Images:      []string{"https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=400&fit=crop"},
			Status:      postmodels.StatusPublished,
			ScheduledAt: publishedAt,
			PublishedAt: &publishedAt,
			Engagement:  postmodels.Engagement{Likes: 45, Comments: 12, Shares: 8},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Content:     "Happy Friday everyone! What are your weekend plans? 🎉",
			Platforms:   []string{postmodels.PlatformInstagram},
			Images:      []string{},
			Status:      postmodels.StatusScheduled,
			ScheduledAt: now.Add(24 * time.Hour),
			PublishedAt: nil,
			Engagement:  postmodels.Engagement{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, post := range samples {
		if _, err := postStore.Insert(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

// seedSampleImages tạo hai ảnh mẫu nếu thư viện ảnh đang trống
func seedSampleImages(ctx context.Context) error {
	existing, err := imageService.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()

	samples := []imagemodels.ImageAsset{
		{
			ID:         uuid.NewString(),
			Filename:   "summer-menu.jpg",
			URL:        "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&h=600&fit=crop",
			Thumbnail:  "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=200&h=200&fit=crop",
			Category:   "Food",
			UploadedAt: now,
			Size:       "2.3MB",
		},
		{
			ID:         uuid.NewString(),
			Filename:   "restaurant-interior.jpg",
			URL:        "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&h=600&fit=crop",
			Thumbnail:  "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=200&h=200&fit=crop",
			Category:   "Interior",
			UploadedAt: now,
			Size:       "1.8MB",
		},
	}

	for _, image := range samples {
		if _, err := imageService.Insert(ctx, image); err != nil {
			return err
		}
	}
	return nil
}
