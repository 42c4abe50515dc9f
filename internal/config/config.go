package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StoreBackend selects where budget categories are persisted.
type StoreBackend string

const (
	StoreFile     StoreBackend = "file"
	StorePostgres StoreBackend = "postgres"
	StoreSQLite   StoreBackend = "sqlite"
	StoreS3       StoreBackend = "s3"
	StoreMemory   StoreBackend = "memory"
)

func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreFile, StorePostgres, StoreSQLite, StoreS3, StoreMemory:
		return true
	}
	return false
}

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string   `env:"PORT" envDefault:"3001"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	Env         string   `env:"ENV" envDefault:"development"`

	// Storage
	StoreBackend StoreBackend `env:"STORE_BACKEND" envDefault:"file"`
	DataDir      string       `env:"DATA_DIR" envDefault:"data"`
	DatabaseURL  string       `env:"DATABASE_URL"`
	SQLitePath   string       `env:"SQLITE_PATH" envDefault:"budget.db"`

	// S3 Storage, used by the s3 backend and by backups
	S3 S3Config `envPrefix:"S3_"`

	// Messaging
	AMQP AMQPConfig `envPrefix:"AMQP_"`

	// Background jobs
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"1h"`
	BackupSchedule  string        `env:"BACKUP_SCHEDULE"`
	BackupPrefix    string        `env:"BACKUP_PREFIX" envDefault:"backups"`

	// Rate limiting
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string `env:"REGION" envDefault:"us-east-1"`
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX" envDefault:"budget"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Endpoint        string `env:"ENDPOINT"` // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether a bucket has been configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// AMQPConfig holds RabbitMQ settings for change-event publishing
type AMQPConfig struct {
	URL        string `env:"URL"`
	Exchange   string `env:"EXCHANGE" envDefault:"budget.events"`
	RoutingKey string `env:"ROUTING_KEY" envDefault:"budget.changed"`
}

// Enabled reports whether a broker URL has been configured.
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// RateLimitConfig holds per-client request limits for the API
type RateLimitConfig struct {
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE" envDefault:"120"`
	Burst             int `env:"BURST" envDefault:"20"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether ENV is set to production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if !c.StoreBackend.IsValid() {
		return fmt.Errorf("STORE_BACKEND %q is not one of file, postgres, sqlite, s3, memory", c.StoreBackend)
	}
	switch c.StoreBackend {
	case StoreFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file backend")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case StoreS3:
		if !c.S3.Enabled() {
			return fmt.Errorf("S3_BUCKET is required for the s3 backend")
		}
	}
	if c.BackupSchedule != "" && !c.S3.Enabled() {
		return fmt.Errorf("S3_BUCKET is required when BACKUP_SCHEDULE is set")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_MINUTE must be positive")
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("REFRESH_INTERVAL must not be negative")
	}
	return nil
}
