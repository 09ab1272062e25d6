package metainfo

import (
	"crypto/sha1"
	"encoding/hex"

	"reseed/internal/bencode"
)

// InfoHash is the SHA-1 digest of the canonical encoding of the info
// dictionary. Canonical form keeps the digest stable across key orderings
// of the same document. The hash identifies the torrent for display and
// journaling; removing info.private changes it, which is how a rewritten
// torrent becomes distinct from its private source.
func (d *Document) InfoHash() ([20]byte, error) {
	info, err := d.Info()
	if err != nil {
		return [20]byte{}, err
	}
	return sha1.Sum(bencode.Encode(info)), nil
}

// HashString renders an infohash in the conventional 40-digit hex form.
func HashString(hash [20]byte) string {
	return hex.EncodeToString(hash[:])
}
