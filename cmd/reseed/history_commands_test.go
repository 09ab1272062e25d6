package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"reseed/internal/testsupport"
)

func TestCLIHistoryListAndClear(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{Name: "alpha", Private: true})
	destination := filepath.Join(env.baseDir, "out.torrent")

	if _, _, err := runCLI(t, []string{"convert", source, destination}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "Alpha")
	requireContains(t, out, "converted")

	out, _, err = runCLI(t, []string{"history", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history list --json: %v", err)
	}
	var rows []historyRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode history JSON: %v\noutput: %q", err, out)
	}
	if len(rows) != 1 {
		t.Fatalf("journal rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Outcome != "converted" {
		t.Fatalf("outcome = %q", row.Outcome)
	}
	if row.DestinationPath != destination {
		t.Fatalf("destination = %q, want %q", row.DestinationPath, destination)
	}
	if row.InfohashBefore == "" || row.InfohashBefore == row.InfohashAfter {
		t.Fatalf("infohash should change: before=%q after=%q", row.InfohashBefore, row.InfohashAfter)
	}

	out, _, err = runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 journal entries")

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list after clear: %v", err)
	}
	requireContains(t, out, "No conversions recorded")
}

func TestCLIHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistoryDisabled())

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "Conversion history is disabled")
}

func TestCLIConvertNoHistoryFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{Name: "alpha", Private: true})

	if _, _, err := runCLI(t, []string{"convert", "--no-history", source, filepath.Join(env.baseDir, "out.torrent")}, env.configPath); err != nil {
		t.Fatalf("convert --no-history: %v", err)
	}

	out, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "No conversions recorded")
}
