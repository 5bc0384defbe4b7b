package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server     ServerConfig
	Media      MediaConfig
	Provider   ProviderConfig
	Cloudinary CloudinaryEnv
	Redis      RedisConfig
	Database   DatabaseConfig
}

type ServerConfig struct {
	Host        string `envconfig:"SERVER_HOST" default:"localhost"`
	Port        string `envconfig:"SERVER_PORT" default:"3000"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Locale      string `envconfig:"APP_LOCALE" default:"en"`
	BodyLimit   int    `envconfig:"SERVER_BODY_LIMIT" default:"209715200"` // 200MB
}

type MediaConfig struct {
	Root             string        `envconfig:"MEDIA_ROOT" default:"uploads"`
	StagingDir       string        `envconfig:"MEDIA_STAGING_DIR" default:"temp_uploads"`
	DecodeDimensions bool          `envconfig:"MEDIA_DECODE_DIMENSIONS" default:"false"`
	StagingMaxAge    time.Duration `envconfig:"MEDIA_STAGING_MAX_AGE" default:"24h"`
	CleanupSchedule  string        `envconfig:"MEDIA_CLEANUP_SCHEDULE" default:"0 */5 * * * *"`
}

type ProviderConfig struct {
	APIURL       string        `envconfig:"MEDIA_PROVIDER_API_URL" default:"https://api.cloudinary.com/v1_1"`
	DeliveryURL  string        `envconfig:"MEDIA_DELIVERY_URL" default:"https://res.cloudinary.com"`
	Timeout      time.Duration `envconfig:"MEDIA_PROVIDER_TIMEOUT" default:"30s"`
	VideoTimeout time.Duration `envconfig:"MEDIA_PROVIDER_VIDEO_TIMEOUT" default:"120s"`
}

// CloudinaryEnv holds the raw credential variables; see ResolveCredentials.
type CloudinaryEnv struct {
	URL          string `envconfig:"CLOUDINARY_URL"`
	CloudName    string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey       string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret    string `envconfig:"CLOUDINARY_API_SECRET"`
	UploadPreset string `envconfig:"CLOUDINARY_UPLOAD_PRESET" default:"pet_marketplace"`
}

type RedisConfig struct {
	Addr        string `envconfig:"REDIS_ADDR"`
	Password    string `envconfig:"REDIS_PASSWORD"`
	DB          int    `envconfig:"REDIS_DB" default:"0"`
	JobQueue    string `envconfig:"MEDIA_JOB_QUEUE" default:"media_jobs"`
	ResultQueue string `envconfig:"MEDIA_RESULT_QUEUE" default:"media_results"`
	WorkerCount int    `envconfig:"WORKER_COUNT" default:"4"`
}

type DatabaseConfig struct {
	Host          string `envconfig:"DB_HOST"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" default:"postgres"`
	Password      string `envconfig:"DB_PASSWORD"`
	Name          string `envconfig:"DB_NAME" default:"pet_media"`
	SSLMode       string `envconfig:"DB_SSLMODE" default:"disable"`
	AutoMigration bool   `envconfig:"RUN_AUTO_MIGRATION" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	root, err := filepath.Abs(cfg.Media.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve media root: %w", err)
	}
	cfg.Media.Root = root

	staging, err := filepath.Abs(cfg.Media.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve staging dir: %w", err)
	}
	cfg.Media.StagingDir = staging

	if cfg.Redis.WorkerCount <= 0 {
		cfg.Redis.WorkerCount = 1
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// DSN returns the postgres connection string, or "" when no database is configured.
func (c *Config) DSN() string {
	if c.Database.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

func (c *Config) QueueEnabled() bool {
	return c.Redis.Addr != ""
}
