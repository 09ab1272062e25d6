package bencode

import "bytes"

// Value is a decoded bencode value: an Integer, a String, a List, or a
// Dict. The interface is sealed by the unexported appendTo method, so the
// type system only admits well-formed trees and Encode is total.
type Value interface {
	appendTo(buf *bytes.Buffer)
}

// Integer is a bencode integer (i...e). The wire format allows arbitrary
// precision; values outside int64 are rejected at decode time.
type Integer int64

// String is a bencode byte string. Values and dictionary keys carry no
// encoding guarantee and must be treated as opaque bytes, never as text.
type String []byte

// List is an ordered sequence of values (l...e).
type List []Value

// Dict maps byte-string keys to values (d...e).
type Dict map[string]Value
