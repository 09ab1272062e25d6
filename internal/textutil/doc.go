// Package textutil derives display text from raw torrent metadata.
//
// Torrent names arrive as arbitrary bytes, frequently release-style strings
// full of dots and underscores. DisplayTitle turns them into something fit
// for tables and the conversion journal.
package textutil
