package testsupport

import (
	"path/filepath"
	"testing"

	"reseed/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config backed by a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.History.Enabled = true
	cfg.History.Dir = filepath.Join(base, "history")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTrackers overrides the replacement tracker list on the test config.
func WithTrackers(trackers ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Trackers = trackers
	}
}

// WithWebseeds overrides the replacement webseed list on the test config.
func WithWebseeds(webseeds ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Webseeds = webseeds
	}
}

// WithHistoryDisabled turns the conversion journal off.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// WithOverwrite permits clobbering existing destination files.
func WithOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Overwrite = true
	}
}
