package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/diradmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the directory API (default from Config)
//	-s string   path of the local state database
//	-p int      user list page size
//	-m string   dialog submit mode: permissive or strict
//	-l string   log level: debug, info, warn, error
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-p", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the directory API")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path of the local state database")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "user list page size")
	submitMode := fs.String("m", cfg.SubmitMode, "dialog submit mode (permissive|strict)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitMode = mustSubmitMode(*submitMode)
	mustPageSize(cfg.PageSize)
}

func mustSubmitMode(s string) string {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case SubmitPermissive, SubmitStrict:
		return m
	}
	panic(fmt.Sprintf("unknown submit mode %q", s))
}

func mustPageSize(n int) {
	if n < 1 {
		panic(fmt.Sprintf("page size must be positive, got %d", n))
	}
}
