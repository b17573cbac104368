package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Log      LogConfig
	CORS     CORSConfig
	Provider ProviderConfig
	Review   ReviewConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds generative-AI provider settings. APIKey is the
// environment-level default credential; a value stored in the settings table
// takes precedence at run time.
type ProviderConfig struct {
	Name         string `mapstructure:"name"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ReviewConfig holds review runner settings. FailOnComparisonError controls
// whether a total failure of the consolidated comparison call marks the run
// failed instead of completing it with per-section error text.
type ReviewConfig struct {
	Concurrency           int  `mapstructure:"concurrency"`
	QueueSize             int  `mapstructure:"queue_size"`
	FailOnComparisonError bool `mapstructure:"fail_on_comparison_error"`
}

// Load reads configuration from environment variables with the DOCREVIEW_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCREVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "docreview")
	v.SetDefault("db.password", "docreview_secret")
	v.SetDefault("db.name", "docreview_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Provider defaults
	v.SetDefault("provider.name", "gemini")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.default_model", "gemini-2.5-flash")
	v.SetDefault("provider.timeout_secs", 120)

	// Review runner defaults
	v.SetDefault("review.concurrency", 2)
	v.SetDefault("review.queue_size", 16)
	v.SetDefault("review.fail_on_comparison_error", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "DOCREVIEW_SERVER_PORT",
		"server.read_timeout":  "DOCREVIEW_SERVER_READ_TIMEOUT",
		"server.write_timeout": "DOCREVIEW_SERVER_WRITE_TIMEOUT",
		"server.environment":   "DOCREVIEW_SERVER_ENVIRONMENT",
		"db.host":              "DOCREVIEW_DB_HOST",
		"db.port":              "DOCREVIEW_DB_PORT",
		"db.user":              "DOCREVIEW_DB_USER",
		"db.password":          "DOCREVIEW_DB_PASSWORD",
		"db.name":              "DOCREVIEW_DB_NAME",
		"db.sslmode":           "DOCREVIEW_DB_SSLMODE",
		"db.max_open":          "DOCREVIEW_DB_MAX_OPEN",
		"db.max_idle":          "DOCREVIEW_DB_MAX_IDLE",
		"log.level":            "DOCREVIEW_LOG_LEVEL",
		"log.format":           "DOCREVIEW_LOG_FORMAT",
		"cors.allowed_origins": "DOCREVIEW_CORS_ALLOWED_ORIGINS",
		"provider.name":          "DOCREVIEW_PROVIDER_NAME",
		"provider.api_key":       "DOCREVIEW_PROVIDER_API_KEY",
		"provider.default_model": "DOCREVIEW_PROVIDER_DEFAULT_MODEL",
		"provider.timeout_secs":  "DOCREVIEW_PROVIDER_TIMEOUT_SECS",
		"review.concurrency":              "DOCREVIEW_REVIEW_CONCURRENCY",
		"review.queue_size":               "DOCREVIEW_REVIEW_QUEUE_SIZE",
		"review.fail_on_comparison_error": "DOCREVIEW_REVIEW_FAIL_ON_COMPARISON_ERROR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCREVIEW_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCREVIEW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	// GEMINI_API_KEY is honored as a bare env default so deployments that only
	// set the provider credential keep working.
	apiKey := v.GetString("provider.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.Provider = ProviderConfig{
		Name:         v.GetString("provider.name"),
		APIKey:       apiKey,
		DefaultModel: v.GetString("provider.default_model"),
		TimeoutSecs:  v.GetInt("provider.timeout_secs"),
	}

	cfg.Review = ReviewConfig{
		Concurrency:           v.GetInt("review.concurrency"),
		QueueSize:             v.GetInt("review.queue_size"),
		FailOnComparisonError: v.GetBool("review.fail_on_comparison_error"),
	}

	return cfg, nil
}
