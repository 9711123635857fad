package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, without trailing slash.
//   - TokenFilePath: where the session token is persisted between runs.
//   - RequestTimeout: bound on any single API request. Requests exceeding it
//     surface as a timeout, not a generic error.
//   - FetchThrottle: window within which repeated profile fetches are
//     suppressed (the initial fetch is exempt).
//   - DebounceInterval: delay before the form's modified flag is recomputed.
//   - SaveCooldown: minimum gap between save triggers after one settles.
type Config struct {
	APIBaseURL       string
	TokenFilePath    string
	RequestTimeout   time.Duration
	FetchThrottle    time.Duration
	DebounceInterval time.Duration
	SaveCooldown     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.TokenFilePath = ".portal-token"
	c.RequestTimeout = 15 * time.Second
	c.FetchThrottle = 5 * time.Second
	c.DebounceInterval = 300 * time.Millisecond
	c.SaveCooldown = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
