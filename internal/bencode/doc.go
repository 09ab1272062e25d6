// Package bencode implements the bencode serialization format used by
// torrent metadata files.
//
// Decoded data is represented as a sealed Value tree with four variants:
// Integer, String, List, and Dict. Byte strings are raw bytes with no
// encoding guarantee; dictionary keys are held as Go strings because Go
// strings are immutable byte sequences that compare byte-lexicographically,
// which is exactly the canonical key order bencode requires.
//
// The decoder is a strict single forward pass: it rejects malformed
// integers, truncated strings, duplicate dictionary keys, and trailing
// bytes, and it reports the byte offset of every failure. Dictionary key
// order is accepted as-is on decode; the encoder always emits keys in
// ascending byte order, so any decoded value re-encodes to canonical form.
// Round-tripping a canonical document reproduces it byte for byte.
package bencode
