package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Console ConsoleConfig
	MockAPI MockAPIConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// ConsoleConfig configures the admin console web server.
type ConsoleConfig struct {
	Port            string        `env:"CONSOLE_PORT,         default=3002"`
	BackendURL      string        `env:"BACKEND_URL,          default=http://localhost:8082"`
	BackendTimeout  time.Duration `env:"BACKEND_TIMEOUT,      default=10s"`
	SessionLifetime time.Duration `env:"SESSION_LIFETIME,     default=24h"`
	IdleTimeout     time.Duration `env:"SESSION_IDLE_TIMEOUT, default=2h"`
	CookieSecure    bool          `env:"COOKIE_SECURE,        default=false"`
}

// MockAPIConfig configures the mock backend served by cmd/mockapi.
type MockAPIConfig struct {
	Port          string        `env:"MOCK_PORT,      default=8082"`
	JWTSecret     string        `env:"JWT_SECRET,     default=dev-secret-change-me"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=24h"`
	AdminUsername string        `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=admin123"`
	Storage       string        `env:"STORAGE,        default=memory"`
	Latency       time.Duration `env:"MOCK_LATENCY,   default=0s"`
	AuditWorkers  int           `env:"AUDIT_WORKERS,  default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=community_admin"`
}

// RedisConfig is optional: an empty Addr keeps console sessions in memory.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR"`
	DB        int    `env:"REDIS_DB,         default=0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX, default=console:session:"`
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Validate rejects combinations the binaries cannot start with.
func (c *Config) Validate() error {
	switch c.MockAPI.Storage {
	case StorageMemory, StorageMongo:
	default:
		return fmt.Errorf("config: STORAGE must be %q or %q, got %q", StorageMemory, StorageMongo, c.MockAPI.Storage)
	}
	if c.IsProduction() && c.MockAPI.JWTSecret == "dev-secret-change-me" {
		return fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	if c.Console.BackendTimeout <= 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT must be positive")
	}
	if c.Console.IdleTimeout <= 0 {
		return fmt.Errorf("config: SESSION_IDLE_TIMEOUT must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
