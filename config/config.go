package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment (and .env when present)
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"8081"`

	SanityProjectID  string `env:"SANITY_PROJECT_ID,notEmpty"`
	SanityDataset    string `env:"SANITY_DATASET" envDefault:"production"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_TOKEN"`
	SanityUseCDN     bool   `env:"SANITY_USE_CDN" envDefault:"true"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"shakya_gallery"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	ResendAPIKey      string `env:"RESEND_API_KEY"`
	ResendFromEmail   string `env:"RESEND_FROM_EMAIL" envDefault:"noreply@shakyagallery.com"`
	GalleryInboxEmail string `env:"GALLERY_INBOX_EMAIL" envDefault:"info@shakyagallery.com"`

	JWTSecret         string        `env:"JWT_SECRET,notEmpty"`
	JWTExpiry         time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`

	WebhookSecret   string   `env:"WEBHOOK_SECRET"`
	CORSOrigins     []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	InvoiceCurrency string   `env:"INVOICE_CURRENCY" envDefault:"USD"`
	RateLimit       int      `env:"RATE_LIMIT" envDefault:"60"`
}

// Load reads .env if present, then parses the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostgresDSN prefers DATABASE_URL and falls back to the discrete DB_* settings
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// SlowRequestTimeout covers requests that render and email documents
const SlowRequestTimeout = 45 * time.Second

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
