// Package config loads the server configuration from the environment
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Stat seeding methods accepted by StatSeed
const (
	SeedStandard = "standard"
	SeedRolled   = "rolled"
)

// Config holds the server configuration
type Config struct {
	GRPCPort   int           `env:"CONTENT_GRPC_PORT"    envDefault:"50051"`
	RedisAddr  string        `env:"CONTENT_REDIS_ADDR"   envDefault:"localhost:6379"`
	RedisDB    int           `env:"CONTENT_REDIS_DB"     envDefault:"0"`
	RedisPass  string        `env:"CONTENT_REDIS_PASSWORD"`
	RedisTLS   bool          `env:"CONTENT_REDIS_TLS"    envDefault:"false"`
	DraftTTL   time.Duration `env:"CONTENT_DRAFT_TTL"    envDefault:"24h"`
	StatSeed   string        `env:"CONTENT_STAT_SEED"    envDefault:"standard"`
	LogLevel   string        `env:"CONTENT_LOG_LEVEL"    envDefault:"info"`
	Reflection bool          `env:"CONTENT_GRPC_REFLECTION" envDefault:"true"`
}

// Load reads the given .env files, or .env when none are named, and then parses
// the environment. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("CONTENT_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("CONTENT_REDIS_ADDR", c.RedisAddr, vb)
	if c.RedisDB < 0 {
		vb.Field("CONTENT_REDIS_DB", "must not be negative")
	}
	if c.DraftTTL <= 0 {
		vb.Field("CONTENT_DRAFT_TTL", "must be positive")
	}
	errors.ValidateEnum("CONTENT_STAT_SEED", c.StatSeed, []string{SeedStandard, SeedRolled}, vb)
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("CONTENT_LOG_LEVEL", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
