package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/strategistayub/SocialProFlow/config"
	basesvc "github.com/strategistayub/SocialProFlow/internal/api/base/service"
	imagemodels "github.com/strategistayub/SocialProFlow/internal/api/image/models"
	imagesvc "github.com/strategistayub/SocialProFlow/internal/api/image/service"
	postmodels "github.com/strategistayub/SocialProFlow/internal/api/post/models"
	postsvc "github.com/strategistayub/SocialProFlow/internal/api/post/service"
	poststore "github.com/strategistayub/SocialProFlow/internal/api/post/store"
	profilemodels "github.com/strategistayub/SocialProFlow/internal/api/profile/models"
	profilesvc "github.com/strategistayub/SocialProFlow/internal/api/profile/service"
	"github.com/strategistayub/SocialProFlow/internal/database"
	"github.com/strategistayub/SocialProFlow/internal/global"
	"github.com/strategistayub/SocialProFlow/internal/notifier"
	"github.com/strategistayub/SocialProFlow/internal/publisher"
	"github.com/strategistayub/SocialProFlow/internal/utility"
)

// Các service dùng chung giữa HTTP handlers và background worker.
// Được gán một lần trong InitServices, chỉ đọc sau đó.
var (
	postStore      poststore.PostStore
	postService    *postsvc.PostService
	profileService *profilesvc.ProfileService
	imageService   *imagesvc.ImageService
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: platform, no_xss)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.Posts), postmodels.Post{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.Images), imagemodels.ImageAsset{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.Profiles), profilemodels.BusinessProfile{})
}

// InitServices wire các service từ collection đã đăng ký trong registry.
// Publisher và notifier được chọn theo cấu hình:
//   - PUBLISHER_WEBHOOK_URL rỗng → LogPublisher (stub luôn thành công)
//   - ALERT_SMTP_HOST rỗng → notifier no-op (chỉ log)
func InitServices() {
	cfg := global.ServerConfig

	postCol, ok := global.RegistryCollections.Get(global.ColNames.Posts)
	if !ok {
		logrus.Fatalf("Collection %s not registered", global.ColNames.Posts)
	}
	imageCol, ok := global.RegistryCollections.Get(global.ColNames.Images)
	if !ok {
		logrus.Fatalf("Collection %s not registered", global.ColNames.Images)
	}
	profileCol, ok := global.RegistryCollections.Get(global.ColNames.Profiles)
	if !ok {
		logrus.Fatalf("Collection %s not registered", global.ColNames.Profiles)
	}

	// Chọn publisher theo cấu hình
	var pub publisher.Publisher
	if cfg.PublisherWebhookURL != "" {
		pub = publisher.NewWebhookPublisher(cfg.PublisherWebhookURL)
		logrus.Infof("Using webhook publisher: %s", cfg.PublisherWebhookURL)
	} else {
		pub = publisher.NewLogPublisher()
		logrus.Info("Using log publisher (PUBLISHER_WEBHOOK_URL not set)")
	}

	postStore = poststore.NewMongoPostStore(postCol)
	postService = postsvc.NewPostService(postStore, pub)
	postService.SetRetryBackoff(cfg.RetryBackoff)
	postService.SetNotifier(notifier.NewEmailNotifier(notifier.EmailConfig{
		SMTPHost:  cfg.AlertSMTPHost,
		SMTPPort:  cfg.AlertSMTPPort,
		SMTPUser:  cfg.AlertSMTPUser,
		SMTPPass:  cfg.AlertSMTPPass,
		FromEmail: cfg.AlertFromEmail,
		ToEmails:  utility.SplitAndTrim(cfg.AlertToEmails, ","),
	}))

	profileService = profilesvc.NewProfileService(basesvc.NewBaseServiceMongo[profilemodels.BusinessProfile](profileCol))
	imageService = imagesvc.NewImageService(basesvc.NewBaseServiceMongo[imagemodels.ImageAsset](imageCol))

	logrus.Info("Initialized services")
}
