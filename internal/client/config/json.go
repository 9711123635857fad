package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/flagx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, non-zero values are copied into
// the runtime Config.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	TokenFilePath    string         `json:"token_file_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	FetchThrottle    timex.Duration `json:"fetch_throttle"`
	DebounceInterval timex.Duration `json:"debounce_interval"`
	SaveCooldown     timex.Duration `json:"save_cooldown"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given nothing is loaded. Zero values in the file leave the
// corresponding setting untouched.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenFilePath != "" {
		cfg.TokenFilePath = jc.TokenFilePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.FetchThrottle.Duration != 0 {
		cfg.FetchThrottle = time.Duration(jc.FetchThrottle.Duration)
	}
	if jc.DebounceInterval.Duration != 0 {
		cfg.DebounceInterval = time.Duration(jc.DebounceInterval.Duration)
	}
	if jc.SaveCooldown.Duration != 0 {
		cfg.SaveCooldown = time.Duration(jc.SaveCooldown.Duration)
	}
}
