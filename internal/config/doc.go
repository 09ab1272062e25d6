// Package config loads, normalizes, and validates reseed configuration data.
//
// It supplies repository defaults (including the built-in public tracker
// list), expands user paths such as tilde shortcuts, and reads TOML files
// from an explicit --config path, ~/.config/reseed/config.toml, or a
// project-local reseed.toml, in that order. Replacement tracker and webseed
// lists keep their configured order because that order is what the rewrite
// pipeline writes into the output document.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
