// Package logging assembles the structured slog loggers used across reseed
// commands.
//
// It owns the configurable console/JSON handlers and centralizes level
// plumbing so every command emits records with the same shape. Log output
// goes to stderr, keeping stdout free for command results. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
