// Package config defines service configuration structures and loading.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars
//   on top of them.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StorePath is the SQLite database path; ":memory:" for ephemeral runs.
	StorePath string `koanf:"store_path"`

	// HiredListLimit caps the hiredCandidates list in the full report.
	HiredListLimit int `koanf:"hired_list_limit"`

	// TopRecruiterLimit caps the topHrByCandidates list.
	TopRecruiterLimit int `koanf:"top_recruiter_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		StorePath:         "hirelens.db",
		HiredListLimit:    50,
		TopRecruiterLimit: 20,
	}
}
