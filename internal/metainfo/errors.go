package metainfo

import (
	"errors"
	"fmt"

	"reseed/internal/bencode"
)

// Model failure classes. Accessors wrap one of these with the key that was
// looked up, so callers classify with errors.Is and still see the key name.
var (
	ErrMissingKey = errors.New("required key missing")
	ErrWrongType  = errors.New("unexpected value type")
)

func missing(key string) error {
	return fmt.Errorf("metainfo: %w: %q", ErrMissingKey, key)
}

func wrongType(key string, got bencode.Value, want string) error {
	return fmt.Errorf("metainfo: %w: %q is %s, want %s", ErrWrongType, key, typeName(got), want)
}

func typeName(v bencode.Value) string {
	switch v.(type) {
	case bencode.Integer:
		return "integer"
	case bencode.String:
		return "string"
	case bencode.List:
		return "list"
	case bencode.Dict:
		return "dictionary"
	default:
		return "unknown"
	}
}
