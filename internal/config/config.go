package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type DatabaseConfig struct {
	URL       string        `mapstructure:"url" validate:"required"`
	MaxConns  int32         `mapstructure:"max_conns" validate:"gte=1"`
	TxTimeout time.Duration `mapstructure:"tx_timeout" validate:"gte=0"`
	Migrate   bool          `mapstructure:"migrate"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	JWKSURL   string `mapstructure:"jwks_url" validate:"omitempty,url"`
}

// CacheConfig selects the number-format cache backend.
// An empty RedisAddr keeps formats in process memory.
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"gte=0"`
	FormatTTL     time.Duration `mapstructure:"format_ttl" validate:"gt=0"`
}

// StorageConfig configures the export bucket. Export is disabled when Endpoint is empty.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket" validate:"required_with=Endpoint"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// legacy variable names still honoured next to the prefixed ones
var envAliases = map[string]string{
	"database.url":         "DATABASE_URL",
	"auth.jwt_secret":      "JWT_SECRET",
	"cache.redis_addr":     "REDIS_ADDR",
	"cache.redis_password": "REDIS_PASSWORD",
	"cache.redis_db":       "REDIS_DB",
	"storage.endpoint":     "MINIO_ENDPOINT",
	"storage.access_key":   "MINIO_ACCESS_KEY",
	"storage.secret_key":   "MINIO_SECRET_KEY",
	"storage.use_ssl":      "MINIO_USE_SSL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.tx_timeout", 30*time.Second)
	v.SetDefault("database.migrate", true)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwks_url", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.format_ttl", 10*time.Minute)
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.bucket", "documents")
	v.SetDefault("logging.level", "info")
}

// NewConfig loads .env (if present), an optional config.yaml and GIGSTERS_* environment variables
func NewConfig() (*Configuration, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/gigsters")

	v.SetEnvPrefix("GIGSTERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for key, alias := range envAliases {
		envKey := "GIGSTERS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, alias); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Auth.JWTSecret == "" && c.Auth.JWKSURL == "" {
		return errors.New("invalid configuration: one of auth.jwt_secret or auth.jwks_url is required")
	}
	return nil
}

// RedisEnabled reports whether a redis backend is configured
func (c CacheConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// StorageEnabled reports whether object storage is configured
func (c StorageConfig) StorageEnabled() bool {
	return c.Endpoint != ""
}
