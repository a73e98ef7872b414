package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	RedisURL      string `envconfig:"REDIS_URL" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT" default:"localhost:9000"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinioUseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
	MinioBucket    string `envconfig:"MINIO_BUCKET" default:"studio-images"`
	// PublicBaseURL is the prefix of delivery URLs handed to browsers.
	// Defaults to the MinIO endpoint when empty.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:""`

	AdminUser     string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`

	// DisplayTimeZone is the wall-clock zone used for schedule comparisons.
	// Deliberately a configuration constant, never the machine zone.
	DisplayTimeZone string `envconfig:"DISPLAY_TIMEZONE" default:"America/New_York"`

	// ClaimTimeout bounds the fetch/overlay/re-upload sequence of a claim.
	ClaimTimeout time.Duration `envconfig:"CLAIM_TIMEOUT" default:"2m"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:""`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	NotifyFrom   string `envconfig:"NOTIFY_FROM" default:"notify@localhost"`
	NotifyTo     string `envconfig:"NOTIFY_TO" default:""`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.PublicBaseURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		cfg.PublicBaseURL = fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
	}
	return &cfg, nil
}
