package bencode

import (
	"fmt"
	"strconv"
)

// maxDepth bounds list and dictionary nesting so hostile inputs cannot
// exhaust the stack. Real torrents nest a handful of levels; declared
// string lengths need no separate bound because decoded strings alias the
// input buffer and can never allocate past it.
const maxDepth = 512

// Decode parses data as a single bencode value. The whole buffer must hold
// exactly one value; bytes remaining after it are an error. Returned String
// values alias data, so callers that go on to mutate data must copy first.
func Decode(data []byte) (Value, error) {
	d := decoder{data: data}
	v, err := d.value(0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, failAt(d.pos, ErrTrailingData)
	}
	return v, nil
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) value(depth int) (Value, error) {
	if depth > maxDepth {
		return nil, failAt(d.pos, ErrTooDeep)
	}
	if d.pos >= len(d.data) {
		return nil, failAt(d.pos, ErrUnexpectedEOF)
	}
	switch c := d.data[d.pos]; {
	case c == 'i':
		return d.integer()
	case c == 'l':
		return d.list(depth)
	case c == 'd':
		return d.dict(depth)
	case c >= '0' && c <= '9':
		return d.str()
	default:
		return nil, failAt(d.pos, fmt.Errorf("%w 0x%02x", ErrBadToken, c))
	}
}

func (d *decoder) integer() (Integer, error) {
	start := d.pos
	d.pos++ // 'i'

	neg := false
	if d.pos < len(d.data) && d.data[d.pos] == '-' {
		neg = true
		d.pos++
	}
	digits := d.pos
	for d.pos < len(d.data) && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return 0, failAt(d.pos, ErrUnexpectedEOF)
	}
	if d.data[d.pos] != 'e' {
		return 0, failAt(start, ErrBadInteger)
	}

	text := d.data[digits:d.pos]
	if len(text) == 0 {
		// "ie" and "i-e" carry no digits.
		return 0, failAt(start, ErrBadInteger)
	}
	if text[0] == '0' && (neg || len(text) > 1) {
		// Leading zeros and negative zero are not valid encodings.
		return 0, failAt(start, ErrBadInteger)
	}

	n, err := strconv.ParseInt(string(d.data[start+1:d.pos]), 10, 64)
	if err != nil {
		return 0, failAt(start, fmt.Errorf("%w: %v", ErrBadInteger, err))
	}
	d.pos++ // 'e'
	return Integer(n), nil
}

func (d *decoder) str() (String, error) {
	start := d.pos
	for d.pos < len(d.data) && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return nil, failAt(d.pos, ErrUnexpectedEOF)
	}
	if d.data[d.pos] != ':' {
		return nil, failAt(d.pos, fmt.Errorf("%w 0x%02x in string length", ErrBadToken, d.data[d.pos]))
	}

	text := d.data[start:d.pos]
	if len(text) > 1 && text[0] == '0' {
		return nil, failAt(start, fmt.Errorf("%w: leading zero in string length", ErrBadInteger))
	}
	length, err := strconv.Atoi(string(text))
	if err != nil {
		// The declared length does not fit in an int, so it certainly
		// exceeds what remains of the buffer.
		return nil, failAt(start, ErrShortString)
	}

	d.pos++ // ':'
	if length > len(d.data)-d.pos {
		return nil, failAt(start, ErrShortString)
	}
	s := String(d.data[d.pos : d.pos+length])
	d.pos += length
	return s, nil
}

func (d *decoder) list(depth int) (List, error) {
	d.pos++ // 'l'
	l := List{}
	for {
		if d.pos >= len(d.data) {
			return nil, failAt(d.pos, ErrUnexpectedEOF)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return l, nil
		}
		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
}

func (d *decoder) dict(depth int) (Dict, error) {
	d.pos++ // 'd'
	m := Dict{}
	for {
		if d.pos >= len(d.data) {
			return nil, failAt(d.pos, ErrUnexpectedEOF)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return m, nil
		}

		keyStart := d.pos
		if c := d.data[d.pos]; c < '0' || c > '9' {
			return nil, failAt(d.pos, fmt.Errorf("%w 0x%02x, want string key", ErrBadToken, c))
		}
		key, err := d.str()
		if err != nil {
			return nil, err
		}
		if _, ok := m[string(key)]; ok {
			// A map cannot hold both occurrences; accepting the input
			// would silently drop data on re-encode.
			return nil, failAt(keyStart, fmt.Errorf("%w %q", ErrDuplicateKey, key))
		}

		v, err := d.value(depth + 1)
		if err != nil {
			return nil, err
		}
		m[string(key)] = v
	}
}
