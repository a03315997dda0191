package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Environment string `toml:"environment"`
	Port        string `toml:"port"`

	// database
	DBHost     string `toml:"db_host"`
	DBPort     string `toml:"db_port"`
	DBUser     string `toml:"db_user"`
	DBPassword string `toml:"db_password"`
	DBName     string `toml:"db_name"`

	// auth
	JWTSecret      string `toml:"jwt_secret"`
	APIKey         string `toml:"api_key"`
	AllowedOrigins string `toml:"allowed_origins"`

	// mail
	ResendAPIKey string `toml:"resend_api_key"`
	MailFrom     string `toml:"mail_from"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"sentry_dsn"`

	// report cache size in megabytes
	CacheSizeMB int `toml:"cache_size_mb"`
}

func defaults() *Config {
	return &Config{
		Environment:    "development",
		Port:           "8080",
		DBHost:         "localhost",
		DBPort:         "3306",
		DBUser:         "fitnesscrm",
		DBPassword:     "fitnesscrm_pass",
		DBName:         "fitnesscrm",
		AllowedOrigins: "*",
		LogLevel:       "info",
		LogToStdout:    true,
		CacheSizeMB:    16,
	}
}

// Load applies, in order, built-in defaults, the TOML file at path (when path
// is set and the file exists) and environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.Environment = getEnv("APP_ENV", cfg.Environment)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.APIKey = getEnv("API_KEY", cfg.APIKey)
	cfg.AllowedOrigins = getEnv("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.ResendAPIKey = getEnv("RESEND_API_KEY", cfg.ResendAPIKey)
	cfg.MailFrom = getEnv("MAIL_FROM", cfg.MailFrom)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogsPath = getEnv("LOGS_PATH", cfg.LogsPath)
	cfg.LogToStdout = getEnvBool("LOG_TO_STDOUT", cfg.LogToStdout)
	cfg.LogFormatJSON = getEnvBool("LOG_FORMAT_JSON", cfg.LogFormatJSON)
	cfg.SentryEnabled = getEnvBool("SENTRY_ENABLED", cfg.SentryEnabled)
	cfg.SentryDSN = getEnv("SENTRY_DSN", cfg.SentryDSN)
	cfg.CacheSizeMB = getEnvInt("CACHE_SIZE_MB", cfg.CacheSizeMB)

	return cfg, nil
}

// DSN enables clientFoundRows so UPDATE reports matched rather than changed rows.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4&clientFoundRows=true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
