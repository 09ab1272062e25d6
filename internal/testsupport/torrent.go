package testsupport

import (
	"bytes"
	"os"
	"testing"

	"reseed/internal/bencode"
)

// Torrent describes a metainfo fixture. Zero values produce a minimal valid
// single-file torrent named "fixture".
type Torrent struct {
	Name         string
	Private      bool
	MultiFile    bool
	Announce     string
	AnnounceList [][]string
	URLList      []string
	Comment      string
}

// Bytes encodes the fixture to canonical torrent bytes.
func (f Torrent) Bytes(t testing.TB) []byte {
	t.Helper()

	name := f.Name
	if name == "" {
		name = "fixture"
	}

	info := bencode.Dict{
		"name":         bencode.String(name),
		"piece length": bencode.Integer(32768),
		"pieces":       bencode.String(bytes.Repeat([]byte{0x01}, 20)),
	}
	if f.MultiFile {
		info["files"] = bencode.List{
			bencode.Dict{
				"length": bencode.Integer(7),
				"path":   bencode.List{bencode.String("a.bin")},
			},
			bencode.Dict{
				"length": bencode.Integer(11),
				"path":   bencode.List{bencode.String("sub"), bencode.String("b.bin")},
			},
		}
	} else {
		info["length"] = bencode.Integer(18)
	}
	if f.Private {
		info["private"] = bencode.Integer(1)
	}

	root := bencode.Dict{"info": info}
	if f.Announce != "" {
		root["announce"] = bencode.String(f.Announce)
	}
	if len(f.AnnounceList) > 0 {
		tiers := make(bencode.List, 0, len(f.AnnounceList))
		for _, tier := range f.AnnounceList {
			entries := make(bencode.List, 0, len(tier))
			for _, url := range tier {
				entries = append(entries, bencode.String(url))
			}
			tiers = append(tiers, entries)
		}
		root["announce-list"] = tiers
	}
	if len(f.URLList) > 0 {
		seeds := make(bencode.List, 0, len(f.URLList))
		for _, url := range f.URLList {
			seeds = append(seeds, bencode.String(url))
		}
		root["url-list"] = seeds
	}
	if f.Comment != "" {
		root["comment"] = bencode.String(f.Comment)
	}

	return bencode.Encode(root)
}

// WriteTorrent encodes the fixture and writes it to path.
func WriteTorrent(t testing.TB, path string, f Torrent) {
	t.Helper()

	if err := os.WriteFile(path, f.Bytes(t), 0o644); err != nil {
		t.Fatalf("write torrent %s: %v", path, err)
	}
}
