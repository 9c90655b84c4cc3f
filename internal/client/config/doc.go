// Package config loads runtime configuration for the directory console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), after an optional dotenv file
//     selected via -e or -env (default ./.env) has been loaded.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the directory API
//	-s string   path of the local state database
//	-p int      user list page size
//	-m string   dialog submit mode (permissive|strict)
//	-l string   log level
//
// Environment
//
//	DIRADMIN_API_URL, DIRADMIN_STATE, DIRADMIN_SUBMIT_MODE, DIRADMIN_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://directory.example/api",
//	  "state_path": "/var/lib/diradmin/state.db",
//	  "page_size": 25,
//	  "submit_mode": "strict",
//	  "match_passwords": false,
//	  "headers": {"locale": "en", "device_type": "cli"},
//	  "placeholder_image": "assets/logo.png",
//	  "log_level": "debug"
//	}
//
// Invalid values (unknown submit mode, non-positive page size, unreadable
// files) panic while loading.
package config
