package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the service.
type Config struct {
	TelegramToken  string
	DatabaseURL    string
	MetricsAddr    string
	DigestTime     string        // HH:MM, local time
	RoutineTime    string        // HH:MM, when the day's routine is regenerated
	ReloadInterval time.Duration // periodic workspace reload, 0 disables
	OwnerChatID    int64         // 0 means the first private chat to talk to the bot wins
	LogMode        string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MetricsAddr:   strings.TrimSpace(os.Getenv("METRICS_ADDR")),
		DigestTime:    strings.TrimSpace(os.Getenv("DIGEST_TIME")),
		RoutineTime:   strings.TrimSpace(os.Getenv("ROUTINE_TIME")),
		LogMode:       strings.TrimSpace(os.Getenv("LOG_MODE")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "chainboard.db"
	}
	if cfg.DigestTime == "" {
		cfg.DigestTime = "08:00"
	}
	if cfg.RoutineTime == "" {
		cfg.RoutineTime = "00:05"
	}

	cfg.ReloadInterval = 15 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("RELOAD_INTERVAL")); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval < 0 {
			return cfg, fmt.Errorf("invalid RELOAD_INTERVAL %q", raw)
		}
		cfg.ReloadInterval = interval
	}

	if raw := strings.TrimSpace(os.Getenv("OWNER_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid OWNER_CHAT_ID %q: %w", raw, err)
		}
		cfg.OwnerChatID = id
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}
