package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.SessionTTL)
	assert.Equal(t, "http://localhost:8080/", cfg.Chargen.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Chargen.CatalogTimeout)
	assert.Equal(t, 2*time.Second, cfg.Chargen.CatalogWait)
	assert.Equal(t, "sheets", cfg.Sheets.XLSXDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DISCORD_GUILD_ID", "guild")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("REDIS_SESSION_TTL", "90m")
	t.Setenv("CHARGEN_BASE_URL", "https://chargen.example.com/")
	t.Setenv("CHARGEN_CATALOG_WAIT", "500ms")
	t.Setenv("GOOGLE_ACCESS_TOKEN", "ya29.token")
	t.Setenv("SHEETS_PDF_DIR", "/tmp/pdf")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "guild", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 90*time.Minute, cfg.Redis.SessionTTL)
	assert.Equal(t, "https://chargen.example.com/", cfg.Chargen.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Chargen.CatalogWait)
	assert.Equal(t, "ya29.token", cfg.Google.AccessToken)
	assert.Equal(t, "/tmp/pdf", cfg.Sheets.PDFDir)
}

func TestLoadRequiresDiscord(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := Load()
	assert.Error(t, err)
}
