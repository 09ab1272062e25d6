// Package metainfo models a torrent document as a thin lens over a decoded
// bencode dictionary.
//
// Accessors expose the handful of keys the rewrite pipeline and the CLI
// need (info, name, private, announce, announce-list, url-list) and report
// shape problems as errors wrapping ErrMissingKey or ErrWrongType. Nothing
// here validates torrent semantics beyond presence and type: unknown keys
// pass through untouched, so a re-encoded document preserves every field
// it never modified.
package metainfo
