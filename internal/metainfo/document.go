package metainfo

import (
	"fmt"

	"reseed/internal/bencode"
)

const (
	keyInfo         = "info"
	keyName         = "name"
	keyFiles        = "files"
	keyPrivate      = "private"
	keyAnnounce     = "announce"
	keyAnnounceList = "announce-list"
	keyURLList      = "url-list"
)

// Document is a parsed torrent file. Mutating accessors edit the underlying
// value tree in place; Encode renders whatever the tree currently holds.
type Document struct {
	root bencode.Dict
}

// Parse decodes data and requires the top-level value to be a dictionary.
// Decode failures pass through unchanged so callers can distinguish syntax
// problems from model problems.
func Parse(data []byte) (*Document, error) {
	v, err := bencode.Decode(data)
	if err != nil {
		return nil, err
	}
	root, ok := v.(bencode.Dict)
	if !ok {
		return nil, fmt.Errorf("metainfo: %w: top-level value is %s, want dictionary", ErrWrongType, typeName(v))
	}
	return &Document{root: root}, nil
}

// Encode renders the document as canonical bencode.
func (d *Document) Encode() []byte {
	return bencode.Encode(d.root)
}

// Info returns the info dictionary.
func (d *Document) Info() (bencode.Dict, error) {
	v, ok := d.root[keyInfo]
	if !ok {
		return nil, missing(keyInfo)
	}
	info, ok := v.(bencode.Dict)
	if !ok {
		return nil, wrongType(keyInfo, v, "dictionary")
	}
	return info, nil
}

// Name returns info.name as raw bytes. Torrent names are not guaranteed to
// be valid UTF-8.
func (d *Document) Name() ([]byte, error) {
	info, err := d.Info()
	if err != nil {
		return nil, err
	}
	v, ok := info[keyName]
	if !ok {
		return nil, missing("info.name")
	}
	name, ok := v.(bencode.String)
	if !ok {
		return nil, wrongType("info.name", v, "string")
	}
	return []byte(name), nil
}

// IsMultiFile reports whether the torrent describes multiple files. The
// test is the presence of info.files; single-file torrents carry
// info.length instead.
func (d *Document) IsMultiFile() (bool, error) {
	info, err := d.Info()
	if err != nil {
		return false, err
	}
	_, ok := info[keyFiles]
	return ok, nil
}

// Private returns info.private and whether the key is present.
func (d *Document) Private() (int64, bool, error) {
	info, err := d.Info()
	if err != nil {
		return 0, false, err
	}
	v, ok := info[keyPrivate]
	if !ok {
		return 0, false, nil
	}
	n, ok := v.(bencode.Integer)
	if !ok {
		return 0, false, wrongType("info.private", v, "integer")
	}
	return int64(n), true, nil
}

// RemovePrivate deletes info.private and reports whether it was present.
// Presence alone decides: trackers treat the key itself as the flag, so
// the value type is not inspected.
func (d *Document) RemovePrivate() (bool, error) {
	info, err := d.Info()
	if err != nil {
		return false, err
	}
	_, ok := info[keyPrivate]
	delete(info, keyPrivate)
	return ok, nil
}

// Announce returns the top-level announce URL as raw bytes.
func (d *Document) Announce() ([]byte, error) {
	v, ok := d.root[keyAnnounce]
	if !ok {
		return nil, missing(keyAnnounce)
	}
	s, ok := v.(bencode.String)
	if !ok {
		return nil, wrongType(keyAnnounce, v, "string")
	}
	return []byte(s), nil
}

// SetAnnounce replaces the top-level announce URL.
func (d *Document) SetAnnounce(url []byte) {
	d.root[keyAnnounce] = bencode.String(url)
}

// RemoveAnnounce deletes announce and reports whether it was present.
func (d *Document) RemoveAnnounce() bool {
	_, ok := d.root[keyAnnounce]
	delete(d.root, keyAnnounce)
	return ok
}

// AnnounceList returns the announce-list tier structure.
func (d *Document) AnnounceList() (bencode.List, error) {
	v, ok := d.root[keyAnnounceList]
	if !ok {
		return nil, missing(keyAnnounceList)
	}
	tiers, ok := v.(bencode.List)
	if !ok {
		return nil, wrongType(keyAnnounceList, v, "list")
	}
	return tiers, nil
}

// SetAnnounceList replaces the announce-list tier structure.
func (d *Document) SetAnnounceList(tiers bencode.List) {
	d.root[keyAnnounceList] = tiers
}

// RemoveAnnounceList deletes announce-list and reports whether it was
// present.
func (d *Document) RemoveAnnounceList() bool {
	_, ok := d.root[keyAnnounceList]
	delete(d.root, keyAnnounceList)
	return ok
}

// URLList returns the url-list value. Webseed lists appear either as a
// list of URLs or as a single URL string, so both shapes pass through.
func (d *Document) URLList() (bencode.Value, error) {
	v, ok := d.root[keyURLList]
	if !ok {
		return nil, missing(keyURLList)
	}
	switch v.(type) {
	case bencode.List, bencode.String:
		return v, nil
	default:
		return nil, wrongType(keyURLList, v, "list or string")
	}
}

// SetURLList replaces the url-list with the given URLs.
func (d *Document) SetURLList(urls bencode.List) {
	d.root[keyURLList] = urls
}

// RemoveURLList deletes url-list and reports whether it was present.
func (d *Document) RemoveURLList() bool {
	_, ok := d.root[keyURLList]
	delete(d.root, keyURLList)
	return ok
}
