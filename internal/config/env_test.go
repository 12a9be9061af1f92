package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "config.yaml", cfg.ConfigPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ConfigReloadInterval)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_ID", "123")
	t.Setenv("CONFIG_RELOAD_INTERVAL", "5s")
	t.Setenv("HISTORY_LIMIT", "3")

	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, "123", cfg.GuildID)
	assert.Equal(t, 5*time.Second, cfg.ConfigReloadInterval)
	assert.Equal(t, 3, cfg.HistoryLimit)
}

func TestParseEnvRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := ParseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("CONFIG_RELOAD_INTERVAL", "soon")

	_, err := ParseEnv()
	require.Error(t, err)
}
