package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reseed/internal/bencode"
	"reseed/internal/rewrite"
	"reseed/internal/testsupport"
)

func TestCLIConvertRewritesPrivateTorrent(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{
		Name:     "debian-12.5.0-amd64-netinst.iso",
		Private:  true,
		Announce: "https://tracker.private.example/announce?key=secret",
		Comment:  "keep me",
	})
	destination := filepath.Join(env.baseDir, "public.torrent")

	out, _, err := runCLI(t, []string{"convert", source, destination}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Converted "+destination)
	requireContains(t, out, "Infohash:")

	doc := parseTorrentFile(t, destination)
	if _, present, err := doc.Private(); err != nil || present {
		t.Fatalf("private flag survived conversion: present=%v err=%v", present, err)
	}
	announce, err := doc.Announce()
	if err != nil {
		t.Fatalf("announce: %v", err)
	}
	if string(announce) != "udp://tracker.test:1337" {
		t.Fatalf("unexpected announce %q", announce)
	}
	if _, err := doc.AnnounceList(); err == nil {
		t.Fatal("single replacement tracker should not add announce-list")
	}

	urls, err := doc.URLList()
	if err != nil {
		t.Fatalf("url-list: %v", err)
	}
	seeds, ok := urls.(bencode.List)
	if !ok || len(seeds) != 1 {
		t.Fatalf("unexpected url-list %#v", urls)
	}
	if got := string(seeds[0].(bencode.String)); got != "http://seed.test/pub/debian-12.5.0-amd64-netinst.iso" {
		t.Fatalf("unexpected webseed %q", got)
	}

	// Fields outside the rewrite surface pass through untouched.
	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	requireContains(t, string(data), "7:comment7:keep me")
}

func TestCLIConvertRefusesPublicTorrent(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "public-source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{
		Name:     "open release",
		Announce: "udp://open.example:80",
	})
	destination := filepath.Join(env.baseDir, "out.torrent")

	_, _, err := runCLI(t, []string{"convert", source, destination}, env.configPath)
	if err == nil {
		t.Fatal("expected refusal for torrent without private flag")
	}
	if !errors.Is(err, rewrite.ErrAlreadyPublic) {
		t.Fatalf("expected ErrAlreadyPublic in chain, got %v", err)
	}
	if got := exitCode(err); got != exitAlreadyPublic {
		t.Fatalf("exit code = %d, want %d", got, exitAlreadyPublic)
	}
	if _, err := os.Stat(destination); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("destination must not be written on refusal: %v", err)
	}
}

func TestCLIConvertForceConvertsPublicTorrent(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "public-source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{
		Name:     "open release",
		Announce: "udp://open.example:80",
	})
	destination := filepath.Join(env.baseDir, "out.torrent")

	out, _, err := runCLI(t, []string{"convert", "--force", source, destination}, env.configPath)
	if err != nil {
		t.Fatalf("convert --force: %v", err)
	}
	requireContains(t, out, "already public (forced)")

	doc := parseTorrentFile(t, destination)
	announce, err := doc.Announce()
	if err != nil || string(announce) != "udp://tracker.test:1337" {
		t.Fatalf("unexpected announce %q (err %v)", announce, err)
	}
}

func TestCLIConvertRejectsMalformedTorrent(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "broken.torrent")
	if err := os.WriteFile(source, []byte("not bencode at all"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}

	_, _, err := runCLI(t, []string{"convert", source, filepath.Join(env.baseDir, "out.torrent")}, env.configPath)
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if got := exitCode(err); got != exitInvalidTorrent {
		t.Fatalf("exit code = %d, want %d", got, exitInvalidTorrent)
	}
}

func TestCLIConvertReportsWriteFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{Name: "alpha", Private: true})

	missing := filepath.Join(env.baseDir, "no-such-dir", "out.torrent")
	_, _, err := runCLI(t, []string{"convert", source, missing}, env.configPath)
	if err == nil {
		t.Fatal("expected failure for missing destination directory")
	}
	if got := exitCode(err); got != exitWriteFailure {
		t.Fatalf("missing dir: exit code = %d, want %d (err %v)", got, exitWriteFailure, err)
	}

	occupied := filepath.Join(env.baseDir, "occupied.torrent")
	if err := os.WriteFile(occupied, []byte("occupied"), 0o644); err != nil {
		t.Fatalf("write existing destination: %v", err)
	}
	_, _, err = runCLI(t, []string{"convert", source, occupied}, env.configPath)
	if err == nil {
		t.Fatal("expected overwrite refusal")
	}
	requireContains(t, err.Error(), "already exists")
	if got := exitCode(err); got != exitWriteFailure {
		t.Fatalf("existing dest: exit code = %d, want %d (err %v)", got, exitWriteFailure, err)
	}
}

func TestCLIConvertOverwriteConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOverwrite())

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{Name: "alpha", Private: true})

	destination := filepath.Join(env.baseDir, "out.torrent")
	if err := os.WriteFile(destination, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale destination: %v", err)
	}

	if _, _, err := runCLI(t, []string{"convert", source, destination}, env.configPath); err != nil {
		t.Fatalf("convert with overwrite enabled: %v", err)
	}
	doc := parseTorrentFile(t, destination)
	if _, present, err := doc.Private(); err != nil || present {
		t.Fatalf("destination not replaced: present=%v err=%v", present, err)
	}
}

func TestCLIConvertTrackerFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{Name: "alpha", Private: true})

	destination := filepath.Join(env.baseDir, "multi.torrent")
	_, _, err := runCLI(t, []string{
		"convert",
		"--tracker", "udp://a.example:1",
		"--tracker", "udp://b.example:2",
		source, destination,
	}, env.configPath)
	if err != nil {
		t.Fatalf("convert with tracker flags: %v", err)
	}

	doc := parseTorrentFile(t, destination)
	announce, err := doc.Announce()
	if err != nil || string(announce) != "udp://a.example:1" {
		t.Fatalf("unexpected announce %q (err %v)", announce, err)
	}
	tiers, err := doc.AnnounceList()
	if err != nil {
		t.Fatalf("announce-list: %v", err)
	}
	if len(tiers) != 2 {
		t.Fatalf("announce-list tiers = %d, want 2", len(tiers))
	}
	second := tiers[1].(bencode.List)
	if got := string(second[0].(bencode.String)); got != "udp://b.example:2" {
		t.Fatalf("unexpected second tier %q", got)
	}
}

func TestCLIConvertBlankTrackerFlagRemovesTrackers(t *testing.T) {
	env := setupCLITestEnv(t)

	source := filepath.Join(env.baseDir, "source.torrent")
	testsupport.WriteTorrent(t, source, testsupport.Torrent{
		Name:     "alpha",
		Private:  true,
		Announce: "https://tracker.private.example/announce",
	})

	destination := filepath.Join(env.baseDir, "trackerless.torrent")
	_, _, err := runCLI(t, []string{"convert", "--tracker", "", source, destination}, env.configPath)
	if err != nil {
		t.Fatalf("convert with blank tracker: %v", err)
	}

	doc := parseTorrentFile(t, destination)
	if _, err := doc.Announce(); err == nil {
		t.Fatal("announce should be removed")
	}
	if _, err := doc.AnnounceList(); err == nil {
		t.Fatal("announce-list should be removed")
	}
}
