package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	S3       S3Config
	Pipeline PipelineConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
}

// PipelineConfig tunes the derivative pipeline. The bounds and qualities are
// empirical defaults, not contracts; only the relative ordering of the two
// qualities matters and the engine enforces it.
type PipelineConfig struct {
	ThumbnailMaxWidth  int `envconfig:"PIPELINE_THUMBNAIL_MAX_WIDTH" default:"400"`
	ThumbnailMaxHeight int `envconfig:"PIPELINE_THUMBNAIL_MAX_HEIGHT" default:"400"`
	FullMaxWidth       int `envconfig:"PIPELINE_FULL_MAX_WIDTH" default:"1200"`
	FullMaxHeight      int `envconfig:"PIPELINE_FULL_MAX_HEIGHT" default:"1200"`
	ThumbnailQuality   int `envconfig:"PIPELINE_THUMBNAIL_QUALITY" default:"80"`
	FullQuality        int `envconfig:"PIPELINE_FULL_QUALITY" default:"85"`

	MaxProductImageBytes int64 `envconfig:"PIPELINE_MAX_PRODUCT_IMAGE_BYTES" default:"5242880"`
	MaxLogoBytes         int64 `envconfig:"PIPELINE_MAX_LOGO_BYTES" default:"2097152"`
	MaxObjectBytes       int64 `envconfig:"PIPELINE_MAX_OBJECT_BYTES" default:"10485760"`
	MaxProductImages     int   `envconfig:"PIPELINE_MAX_PRODUCT_IMAGES" default:"10"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
