package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from environment variables.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	// Record store backend: "redis" or "postgres".
	StoreDriver string
	RedisURL    string
	DatabaseURL string

	// Optional Kafka brokers for the event publisher; empty means the
	// in-process publisher is used.
	KafkaBrokers []string

	// Demo credentials. These default to the demo-parity literals but are
	// injectable so deployments never have to compile secrets into source.
	AdminEmail      string
	AdminPassword   string
	TeacherPassword string

	OTPTTL      time.Duration
	SeedOnStart bool
}

// LoadConfig reads configuration from the environment, loading a local
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		StoreDriver:     getEnv("STORE_DRIVER", "redis"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", "shadaan001@gmail.com"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "Admin@1234"),
		TeacherPassword: getEnv("TEACHER_PASSWORD", "teacher123"),
		OTPTTL:          durationEnv("OTP_TTL", 5*time.Minute),
		SeedOnStart:     boolEnv("SEED_ON_START", true),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	switch cfg.StoreDriver {
	case "redis":
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when STORE_DRIVER=redis")
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
