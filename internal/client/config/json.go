package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/diradmin/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent or
// zero-valued fields leave the corresponding Config value untouched.
type JsonConfig struct {
	APIBaseURL       string       `json:"api_base_url"`
	StatePath        string       `json:"state_path"`
	PageSize         int          `json:"page_size"`
	SubmitMode       string       `json:"submit_mode"`
	MatchPasswords   *bool        `json:"match_passwords"`
	Headers          *JsonHeaders `json:"headers"`
	PlaceholderImage string       `json:"placeholder_image"`
	LogLevel         string       `json:"log_level"`
}

// JsonHeaders overrides individual entries of the fixed header set.
type JsonHeaders struct {
	Locale          string `json:"locale"`
	AppVersion      string `json:"app_version"`
	DeviceName      string `json:"device_name"`
	DeviceOSVersion string `json:"device_os_version"`
	DeviceUDID      string `json:"device_udid"`
	DevicePushToken string `json:"device_push_token"`
	DeviceType      string `json:"device_type"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flag (flagx.JsonConfigFlags).
// Without it nothing is loaded. Read, unmarshal and validation errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StatePath, jc.StatePath)
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.SubmitMode != "" {
		cfg.SubmitMode = mustSubmitMode(jc.SubmitMode)
	}
	if jc.MatchPasswords != nil {
		cfg.MatchPasswords = *jc.MatchPasswords
	}
	setString(&cfg.PlaceholderImage, jc.PlaceholderImage)
	setString(&cfg.LogLevel, jc.LogLevel)

	if h := jc.Headers; h != nil {
		setString(&cfg.Headers.Locale, h.Locale)
		setString(&cfg.Headers.AppVersion, h.AppVersion)
		setString(&cfg.Headers.DeviceName, h.DeviceName)
		setString(&cfg.Headers.DeviceOSVersion, h.DeviceOSVersion)
		setString(&cfg.Headers.DeviceUDID, h.DeviceUDID)
		setString(&cfg.Headers.DevicePushToken, h.DevicePushToken)
		setString(&cfg.Headers.DeviceType, h.DeviceType)
	}

	mustPageSize(cfg.PageSize)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
