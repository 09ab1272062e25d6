// Package main hosts the reseed CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into torrent
// conversions, batch runs, metadata display, journal queries, and
// configuration scaffolding. It centralizes configuration resolution,
// structured logging setup, and exit-code classification so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
