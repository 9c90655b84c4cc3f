package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv(EnvAPIURL, "http://env/api")
	t.Setenv(EnvSubmitMode, "strict")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env/api", cfg.APIBaseURL)
	assert.Equal(t, SubmitStrict, cfg.SubmitMode)
	assert.Equal(t, "diradmin.db", cfg.StatePath)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DIRADMIN_STATE=from-file.db\nDIRADMIN_LOG_LEVEL=warn\n"), 0o600))

	// registers cleanup so the values loaded from the file are removed again
	t.Setenv(EnvStatePath, "")
	os.Unsetenv(EnvStatePath)
	t.Setenv(EnvLogLevel, "error")

	os.Args = []string{"testbin", "-e", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "from-file.db", cfg.StatePath)
	assert.Equal(t, "error", cfg.LogLevel, "process environment wins over the file")
}

func TestParseEnv_MissingNamedFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}

	require.Panics(t, func() { parseEnv(&Config{}) })
}

func TestParseEnv_BadSubmitModePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(EnvSubmitMode, "sometimes")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
