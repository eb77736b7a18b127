package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-content/internal/config"
	"github.com/KirkDiggler/rpg-content/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	for _, key := range []string{
		"CONTENT_GRPC_PORT",
		"CONTENT_REDIS_ADDR",
		"CONTENT_DRAFT_TTL",
		"CONTENT_STAT_SEED",
		"CONTENT_LOG_LEVEL",
	} {
		// Setenv registers the restore; Unsetenv then starts each test clean
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) missingEnvFile() string {
	return filepath.Join(s.dir, "missing.env")
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := config.Load(s.missingEnvFile())
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(24*time.Hour, cfg.DraftTTL)
	s.Equal(config.SeedStandard, cfg.StatSeed)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoad_FromEnvironment() {
	s.T().Setenv("CONTENT_GRPC_PORT", "6000")
	s.T().Setenv("CONTENT_DRAFT_TTL", "90m")
	s.T().Setenv("CONTENT_STAT_SEED", "rolled")
	s.T().Setenv("CONTENT_LOG_LEVEL", "debug")

	cfg, err := config.Load(s.missingEnvFile())
	s.Require().NoError(err)

	s.Equal(6000, cfg.GRPCPort)
	s.Equal(90*time.Minute, cfg.DraftTTL)
	s.Equal(config.SeedRolled, cfg.StatSeed)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoad_FromEnvFile() {
	path := filepath.Join(s.dir, "test.env")
	s.Require().NoError(os.WriteFile(path, []byte("CONTENT_REDIS_ADDR=redis:6380\nCONTENT_STAT_SEED=rolled\n"), 0o600))
	s.T().Cleanup(func() {
		_ = os.Unsetenv("CONTENT_REDIS_ADDR")
		_ = os.Unsetenv("CONTENT_STAT_SEED")
	})

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("redis:6380", cfg.RedisAddr)
	s.Equal(config.SeedRolled, cfg.StatSeed)
}

func (s *ConfigTestSuite) TestLoad_Invalid() {
	testCases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "port out of range", key: "CONTENT_GRPC_PORT", value: "70000", field: "CONTENT_GRPC_PORT"},
		{name: "unknown seed", key: "CONTENT_STAT_SEED", value: "pointbuy", field: "CONTENT_STAT_SEED"},
		{name: "zero ttl", key: "CONTENT_DRAFT_TTL", value: "0s", field: "CONTENT_DRAFT_TTL"},
		{name: "unknown log level", key: "CONTENT_LOG_LEVEL", value: "loud", field: "CONTENT_LOG_LEVEL"},
		{name: "unparsable port", key: "CONTENT_GRPC_PORT", value: "abc", field: "parse environment"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := config.Load(s.missingEnvFile())
			s.Require().Error(err)
			s.Nil(cfg)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}
