package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the process settings read from the environment
type Env struct {
	// DiscordToken is the bot token
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// ApplicationID is the Discord application the commands belong to
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one guild. Empty registers globally.
	GuildID string `env:"GUILD_ID"`

	// ConfigPath is the YAML file with activities and presentation settings
	ConfigPath string `env:"CONFIG_PATH" envDefault:"config.yaml"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// LogLevel is a zerolog level name
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ConfigReloadInterval is how often the config file is checked for changes.
	// Zero disables polling; SIGHUP still reloads.
	ConfigReloadInterval time.Duration `env:"CONFIG_RELOAD_INTERVAL" envDefault:"30s"`

	// HistoryLimit is how many finished sessions are kept
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"20"`
}

// ParseEnv loads Env from environment variables
func ParseEnv() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
