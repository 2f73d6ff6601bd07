package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mock     MockConfig
	Storage  StorageConfig
	Activity ActivityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// MockConfig drives the mock authentication backend.
type MockConfig struct {
	Latency  time.Duration `env:"MOCK_LATENCY,  default=1s"`
	Password string        `env:"MOCK_PASSWORD, default=password123"`
}

type StorageConfig struct {
	Driver        string `env:"STORAGE_DRIVER, default=memory"`
	SessionDriver string `env:"SESSION_DRIVER, default=memory"`
}

type ActivityConfig struct {
	Workers int `env:"ACTIVITY_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=content_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process resolves the configuration from lookuper and validates it.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown drivers and values the services cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("STORAGE_DRIVER: unknown driver %q", c.Storage.Driver)
	}
	switch c.Storage.SessionDriver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("SESSION_DRIVER: unknown driver %q", c.Storage.SessionDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET: must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL: must be positive")
	}
	if c.Mock.Latency < 0 {
		return fmt.Errorf("MOCK_LATENCY: must not be negative")
	}
	if c.Mock.Password == "" {
		return fmt.Errorf("MOCK_PASSWORD: must not be empty")
	}
	return nil
}

// IsProduction reports whether logs should be emitted as plain JSON.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
