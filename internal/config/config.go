// Package config loads runtime configuration from an optional YAML file,
// a .env file and the process environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

// Model sources.
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds all runtime configuration values.
type Config struct {
	Env            string      `yaml:"env"`  // application environment (e.g. "dev", "prod")
	Port           string      `yaml:"port"` // HTTP port to listen on
	Model          ModelConfig `yaml:"model"`
	Redis          RedisConfig `yaml:"redis"`
	Log            LogConfig   `yaml:"log"`
	HTTP           HTTPConfig  `yaml:"http"`
	MetricsEnabled bool        `yaml:"metrics_enabled"` // serve GET /metrics
}

// ModelConfig says where the classifier artifact comes from.
type ModelConfig struct {
	Source   string `yaml:"source"`    // "file" or "redis"
	Path     string `yaml:"path"`      // artifact path when Source is "file"
	RedisKey string `yaml:"redis_key"` // artifact key when Source is "redis"
}

// RedisConfig is only used when the model comes from Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`     // host:port
	Password string `yaml:"password"` // optional
	DB       int    `yaml:"db"`       // database number
	TLS      bool   `yaml:"tls"`      // dial with TLS 1.2+
}

// LogConfig feeds NewLogger.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // json or console
	File       string `yaml:"file"`   // rotate into this file instead of stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// HTTPConfig tunes the echo server.
type HTTPConfig struct {
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	BodyLimit          string        `yaml:"body_limit"` // echo size notation, e.g. "1M"
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
}

// BodyLimitBytes parses BodyLimit ("512K", "1M", "64B") into a byte count.
func (h HTTPConfig) BodyLimitBytes() (int64, error) {
	n, err := bytes.Parse(h.BodyLimit)
	if err != nil {
		return 0, fmt.Errorf("invalid body limit %q: %w", h.BodyLimit, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid body limit %q: must be positive", h.BodyLimit)
	}
	return n, nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env:  "dev",
		Port: "5000",
		Model: ModelConfig{
			Source:   SourceFile,
			Path:     "rf_model.json",
			RedisKey: "cardio:model",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		HTTP: HTTPConfig{
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "1M",
			ShutdownTimeout:    10 * time.Second,
		},
		MetricsEnabled: true,
	}
}

// Load builds a Config from defaults, the YAML file named by CONFIG_FILE
// (if any) and the environment. A .env file in the working directory is
// read first but never overrides variables that are already set.
func Load() (Config, error) {
	// .env never overrides variables that are already exported
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default() // lowest precedence
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg) // environment wins over the file

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envStr("APP_ENV", cfg.Env)
	cfg.Port = envStr("APP_PORT", cfg.Port)

	cfg.Model.Source = envStr("MODEL_SOURCE", cfg.Model.Source)
	cfg.Model.Path = envStr("MODEL_PATH", cfg.Model.Path)
	cfg.Model.RedisKey = envStr("MODEL_REDIS_KEY", cfg.Model.RedisKey)

	// REDIS_HOST and REDIS_PORT together win over REDIS_ADDR.
	cfg.Redis.Addr = envStr("REDIS_ADDR", cfg.Redis.Addr)
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		cfg.Redis.Addr = host + ":" + port
	}
	cfg.Redis.Password = envStr("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TLS = envBool("REDIS_TLS", cfg.Redis.TLS)

	cfg.Log.Level = envStr("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envStr("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = envStr("LOG_FILE", cfg.Log.File)
	cfg.Log.MaxSizeMB = envInt("LOG_MAX_SIZE_MB", cfg.Log.MaxSizeMB)
	cfg.Log.MaxBackups = envInt("LOG_MAX_BACKUPS", cfg.Log.MaxBackups)
	cfg.Log.MaxAgeDays = envInt("LOG_MAX_AGE_DAYS", cfg.Log.MaxAgeDays)

	cfg.HTTP.CORSAllowedOrigins = envList("CORS_ALLOWED_ORIGINS", cfg.HTTP.CORSAllowedOrigins)
	cfg.HTTP.BodyLimit = envStr("BODY_LIMIT", cfg.HTTP.BodyLimit)
	cfg.HTTP.ShutdownTimeout = envDur("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)

	cfg.MetricsEnabled = envBool("METRICS_ENABLED", cfg.MetricsEnabled)
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port must not be empty")
	}
	switch c.Model.Source {
	case SourceFile:
		if c.Model.Path == "" {
			return errors.New("config: model path must not be empty")
		}
	case SourceRedis:
		if c.Model.RedisKey == "" {
			return errors.New("config: model redis key must not be empty")
		}
	default:
		return fmt.Errorf("config: unknown model source %q", c.Model.Source)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if _, err := c.HTTP.BodyLimitBytes(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("config: shutdown timeout must be positive")
	}
	return nil
}

// ModelLocation names the artifact the way it appears in log lines and in
// the model-unavailable response.
func (c Config) ModelLocation() string {
	if c.Model.Source == SourceRedis {
		return "redis key " + c.Model.RedisKey
	}
	return c.Model.Path
}
