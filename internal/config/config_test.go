package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("GIGSTERS_DATABASE_URL", "postgres://localhost:5432/gigsters")
	t.Setenv("GIGSTERS_AUTH_JWT_SECRET", "secret")
	t.Setenv("GIGSTERS_DATABASE_TX_TIMEOUT", "5s")
	t.Setenv("GIGSTERS_LOGGING_LEVEL", "debug")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/gigsters", cfg.Database.URL)
	assert.Equal(t, 5*time.Second, cfg.Database.TxTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "documents", cfg.Storage.Bucket)
	assert.False(t, cfg.Cache.RedisEnabled())
	assert.False(t, cfg.Storage.StorageEnabled())
}

func TestNewConfig_LegacyVariableNames(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://legacy/db")
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://legacy/db", cfg.Database.URL)
	assert.Equal(t, "legacy-secret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Cache.RedisEnabled())
}

func TestValidate_RequiresAuthSource(t *testing.T) {
	cfg := Configuration{
		Server:   ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{URL: "postgres://x", MaxConns: 1},
		Cache:    CacheConfig{FormatTTL: time.Minute},
		Logging:  LoggingConfig{Level: "info"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt_secret")

	cfg.Auth.JWKSURL = "https://auth.example.com/.well-known/jwks.json"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := Configuration{
		Server:   ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{URL: "postgres://x", MaxConns: 1},
		Auth:     AuthConfig{JWTSecret: "s"},
		Cache:    CacheConfig{FormatTTL: time.Minute},
		Logging:  LoggingConfig{Level: "verbose"},
	}

	assert.Error(t, cfg.Validate())
}
