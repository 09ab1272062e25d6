package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"reseed/internal/testsupport"
)

func TestCLIShowRendersTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.torrent")
	testsupport.WriteTorrent(t, path, testsupport.Torrent{
		Name:     "ubuntu-studio.iso",
		Private:  true,
		Announce: "https://tracker.private.example/announce",
		AnnounceList: [][]string{
			{"https://tracker.private.example/announce"},
			{"https://backup.example/announce"},
		},
		URLList: []string{"http://mirror.example/pub/"},
	})

	out, _, err := runCLI(t, []string{"show", path}, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "ubuntu-studio.iso")
	requireContains(t, out, "yes")
	requireContains(t, out, "single-file")
	requireContains(t, out, "https://backup.example/announce")
	requireContains(t, out, "http://mirror.example/pub/")
}

func TestCLIShowJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.torrent")
	testsupport.WriteTorrent(t, path, testsupport.Torrent{
		Name:     "ubuntu-studio.iso",
		Private:  true,
		Announce: "https://tracker.private.example/announce",
		AnnounceList: [][]string{
			{"https://tracker.private.example/announce"},
			{"https://backup.example/announce"},
		},
		URLList: []string{"http://mirror.example/pub/"},
	})

	out, _, err := runCLI(t, []string{"show", "--json", path}, "")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}

	var view torrentView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode JSON: %v\noutput: %q", err, out)
	}
	if view.Name != "ubuntu-studio.iso" {
		t.Fatalf("name = %q", view.Name)
	}
	if !view.Private {
		t.Fatal("expected private = true")
	}
	if view.MultiFile {
		t.Fatal("expected single-file layout")
	}
	if len(view.Infohash) != 40 {
		t.Fatalf("infohash = %q, want 40 hex chars", view.Infohash)
	}
	// announce-list takes precedence over announce for the effective set.
	if len(view.Trackers) != 2 || view.Trackers[1] != "https://backup.example/announce" {
		t.Fatalf("trackers = %v", view.Trackers)
	}
	if view.Announce != "https://tracker.private.example/announce" {
		t.Fatalf("announce = %q", view.Announce)
	}
	if len(view.Webseeds) != 1 || view.Webseeds[0] != "http://mirror.example/pub/" {
		t.Fatalf("webseeds = %v", view.Webseeds)
	}
}

func TestCLIShowPublicTorrentWithoutTrackers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.torrent")
	testsupport.WriteTorrent(t, path, testsupport.Torrent{Name: "bare"})

	out, _, err := runCLI(t, []string{"show", path}, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "(none)")
	requireContains(t, out, "Private")
}

func TestCLIShowRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.torrent")
	testsupport.WriteTorrent(t, path, testsupport.Torrent{Name: "ok"})

	_, _, err := runCLI(t, []string{"show", path + ".missing"}, "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
