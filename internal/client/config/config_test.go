package config

import (
	"os"
	"testing"

	"github.com/dmitrijs2005/diradmin/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api", c.APIBaseURL)
	assert.Equal(t, "diradmin.db", c.StatePath)
	assert.Equal(t, 10, c.PageSize)
	assert.Equal(t, SubmitPermissive, c.SubmitMode)
	assert.True(t, c.MatchPasswords)
	assert.Equal(t, client.DefaultHeaders(), c.Headers)
	assert.Equal(t, "assets/logo.png", c.PlaceholderImage)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url": "http://json/api",
		"state_path":   "json.db",
		"log_level":    "warn",
	})
	t.Setenv(EnvStatePath, "env.db")
	t.Setenv(EnvLogLevel, "error")

	os.Args = []string{"testbin", "-c", path, "-l", "debug"}
	cfg := LoadConfig()

	assert.Equal(t, "http://json/api", cfg.APIBaseURL, "json over defaults")
	assert.Equal(t, "env.db", cfg.StatePath, "env over json")
	assert.Equal(t, "debug", cfg.LogLevel, "flags over env")
}
