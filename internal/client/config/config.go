package config

import (
	"github.com/dmitrijs2005/diradmin/internal/client/client"
)

// Submit modes accepted in SubmitMode.
const (
	SubmitPermissive = "permissive"
	SubmitStrict     = "strict"
)

// Config holds runtime settings for the directory console.
//
// Fields:
//   - APIBaseURL: base path of the directory JSON API.
//   - StatePath: SQLite file holding the session token.
//   - PageSize: server page size of the user list.
//   - SubmitMode: "permissive" lets the edit dialog close with an invalid
//     form; "strict" does not.
//   - MatchPasswords: require password and confirm_password to match.
//   - Headers: the fixed header set sent with every request.
//   - PlaceholderImage: shown when a profile image cannot be loaded.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	StatePath        string
	PageSize         int
	SubmitMode       string
	MatchPasswords   bool
	Headers          client.Headers
	PlaceholderImage string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.StatePath = "diradmin.db"
	c.PageSize = 10
	c.SubmitMode = SubmitPermissive
	c.MatchPasswords = true
	c.Headers = client.DefaultHeaders()
	c.PlaceholderImage = "assets/logo.png"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (after loading an optional .env file)
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
