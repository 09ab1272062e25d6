package main

import (
	"errors"

	"reseed/internal/rewrite"
)

// Exit codes form the scriptable contract of the CLI. Everything that is
// not a success, an already-public refusal, or an output write failure
// lands in the invalid-torrent bucket.
const (
	exitOK             = 0
	exitInvalidTorrent = 1
	exitAlreadyPublic  = 2
	exitWriteFailure   = 3
)

// errOutputWrite tags failures to produce the destination file. Wrap it
// with %w so exitCode can classify the chain.
var errOutputWrite = errors.New("output write failure")

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, rewrite.ErrAlreadyPublic):
		return exitAlreadyPublic
	case errors.Is(err, errOutputWrite):
		return exitWriteFailure
	default:
		return exitInvalidTorrent
	}
}
