package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("DIGEST_TIME", "")
	t.Setenv("ROUTINE_TIME", "")
	t.Setenv("RELOAD_INTERVAL", "")
	t.Setenv("OWNER_CHAT_ID", "")
	t.Setenv("LOG_MODE", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "chainboard.db", cfg.DatabaseURL)
	require.Equal(t, "08:00", cfg.DigestTime)
	require.Equal(t, "00:05", cfg.RoutineTime)
	require.Equal(t, 15*time.Minute, cfg.ReloadInterval)
	require.Zero(t, cfg.OwnerChatID)
}

func TestLoadReloadInterval(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("RELOAD_INTERVAL", "5m")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.ReloadInterval)

	t.Setenv("RELOAD_INTERVAL", "0")
	cfg, err = Load()
	require.NoError(t, err)
	require.Zero(t, cfg.ReloadInterval, "zero disables the periodic reload")

	t.Setenv("RELOAD_INTERVAL", "soon")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadRequiresToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}
