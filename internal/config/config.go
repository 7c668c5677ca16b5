package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig `envPrefix:"DISCORD_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Chargen ChargenConfig `envPrefix:"CHARGEN_"`
	Google  GoogleConfig  `envPrefix:"GOOGLE_"`
	Sheets  SheetsConfig  `envPrefix:"SHEETS_"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"TOKEN,required,notEmpty"`
	AppID   string `env:"APP_ID,required,notEmpty"`
	GuildID string `env:"GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL means in-memory sessions.
type RedisConfig struct {
	URL        string        `env:"URL"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// ChargenConfig holds the character server configuration
type ChargenConfig struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8080/"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
	CatalogWait    time.Duration `env:"CATALOG_WAIT" envDefault:"2s"`
}

// GoogleConfig holds the token used for Google Sheets delivery
type GoogleConfig struct {
	AccessToken string `env:"ACCESS_TOKEN"`
}

// SheetsConfig holds where local copies of generated sheets go
type SheetsConfig struct {
	PDFDir  string `env:"PDF_DIR"`
	XLSXDir string `env:"XLSX_DIR" envDefault:"sheets"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
