package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultRateLimit       = "100-M"
	defaultRequestTimeout  = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// RateLimit is a ulule/limiter formatted rate such as "100-M". Empty disables rate limiting.
	RateLimit          string
	CORSAllowedOrigins []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout.String())
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
	v.SetDefault("METRICS_ENABLED", true)

	// Environment variables override defaults and anything loaded from .env.
	// An explicitly empty RATE_LIMIT must reach us to disable the limiter.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.MetricsEnabled = v.GetBool("METRICS_ENABLED")
	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))
	if cfg.RateLimit == "" {
		log.Println("Warning: RATE_LIMIT is empty. Rate limiting is disabled.")
	}

	logLevelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel.String())
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RequestTimeout = parseDuration(v.GetString("REQUEST_TIMEOUT"), "REQUEST_TIMEOUT", defaultRequestTimeout)
	cfg.ShutdownTimeout = parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), "SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	return cfg, nil
}

// parseDuration parses raw, falling back to def with a warning when raw is not a valid duration.
func parseDuration(raw, key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
