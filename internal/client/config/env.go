package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/diradmin/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAPIURL     = "DIRADMIN_API_URL"
	EnvStatePath  = "DIRADMIN_STATE"
	EnvSubmitMode = "DIRADMIN_SUBMIT_MODE"
	EnvLogLevel   = "DIRADMIN_LOG_LEVEL"
)

// parseEnv overlays Config with environment variables.
//
// A dotenv file is loaded first: the one named by -e or -env, or ./.env if
// it exists. Variables already set in the process environment win over the
// file. A named file that cannot be read, or an invalid submit mode,
// panics.
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStatePath); ok && v != "" {
		cfg.StatePath = v
	}
	if v, ok := os.LookupEnv(EnvSubmitMode); ok && v != "" {
		cfg.SubmitMode = mustSubmitMode(v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
