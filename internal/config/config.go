// Package config loads configuration from the environment and sets up the
// dual-output logger.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values.
type Config struct {
	// HTTP server
	Port string

	// SQLite database path
	DBPath string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Knowledge base: optional YAML file replacing the built-in entries
	KnowledgeFile string

	// Retention: when RetentionDays > 0 a scheduled purge runs on
	// PurgeSchedule (cron expression). 0 disables scheduling; purges then
	// happen only on explicit request.
	RetentionDays int
	PurgeSchedule string

	// Server URL used by the CLI client
	ServerURL string
}

// Load reads configuration from environment variables, with a best-effort
// .env overlay. Defaults match the service's standalone deployment.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("HOTELBOT_PORT", "5000"),
		DBPath:        getEnv("HOTELBOT_DB", "hotelbot.db"),
		LogFile:       getEnv("HOTELBOT_LOG_FILE", "hotelbot.log"),
		LogLevel:      parseLogLevel(getEnv("HOTELBOT_LOG_LEVEL", "INFO")),
		KnowledgeFile: getEnv("HOTELBOT_KNOWLEDGE_FILE", ""),
		RetentionDays: getEnvInt("HOTELBOT_RETENTION_DAYS", 0),
		PurgeSchedule: getEnv("HOTELBOT_PURGE_SCHEDULE", "0 3 * * *"),
		ServerURL:     getEnv("HOTELBOT_SERVER_URL", "http://localhost:5000"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
