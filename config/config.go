package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả đọc từ environment variables (file config/env/<GO_ENV>.env nếu có).
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"socialflow"`    // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Session check (tùy chọn). Khi bật, các route /api yêu cầu bearer token hợp lệ.
	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"false"` // Bật/tắt session check
	JwtSecret   string `env:"JWT_SECRET"`                      // Bí mật JWT (bắt buộc khi AUTH_ENABLED=true)

	// Post lifecycle policy
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"1h"` // Khoảng lùi lịch khi retry post failed

	// Scheduler worker (enhancement — mặc định tắt để giữ đúng hành vi gốc:
	// "schedule" chỉ ghi nhận thời điểm, không có trigger theo đồng hồ)
	SchedulerEnabled  bool          `env:"SCHEDULER_ENABLED" envDefault:"false"` // Bật/tắt worker publish post đến hạn
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1m"`   // Khoảng thời gian giữa các lần quét

	// Publisher boundary: webhook nhận payload publish (rỗng = dùng log publisher stub)
	PublisherWebhookURL string `env:"PUBLISHER_WEBHOOK_URL"`

	// Cảnh báo qua email khi post scheduled bị failed (tùy chọn)
	AlertSMTPHost  string `env:"ALERT_SMTP_HOST"`
	AlertSMTPPort  int    `env:"ALERT_SMTP_PORT" envDefault:"587"`
	AlertSMTPUser  string `env:"ALERT_SMTP_USER"`
	AlertSMTPPass  string `env:"ALERT_SMTP_PASS"`
	AlertFromEmail string `env:"ALERT_FROM_EMAIL"`
	AlertToEmails  string `env:"ALERT_TO_EMAILS"` // Danh sách email phân cách bằng dấu phẩy

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env (nếu tìm thấy) rồi parse từ environment.
// File env là tùy chọn: khi deploy bằng container thường chỉ dùng environment variables.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Dùng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không thể load file env tại %s: %v (dùng environment hiện tại)\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
