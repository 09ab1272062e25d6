// Package history persists a journal of torrent conversions in SQLite.
//
// The Store manages the database connection and schema initialization; each
// conversion (or already-public skip) becomes one row capturing paths,
// infohashes, and replacement counts. The journal is advisory: callers log
// and continue when a write fails, so a broken journal never blocks a
// conversion.
//
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package history
