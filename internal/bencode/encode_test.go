package bencode_test

import (
	"bytes"
	"reflect"
	"testing"

	"reseed/internal/bencode"
)

func TestEncodeValues(t *testing.T) {
	cases := []struct {
		name  string
		value bencode.Value
		want  string
	}{
		{"zero", bencode.Integer(0), "i0e"},
		{"negative", bencode.Integer(-42), "i-42e"},
		{"empty string", bencode.String(""), "0:"},
		{"binary string", bencode.String{0x00, 0x01, 0xff}, "3:\x00\x01\xff"},
		{"empty list", bencode.List{}, "le"},
		{"empty dict", bencode.Dict{}, "de"},
		{
			"list",
			bencode.List{bencode.String("spam"), bencode.Integer(7)},
			"l4:spami7ee",
		},
		{
			"nested",
			bencode.Dict{"spam": bencode.List{bencode.String("a"), bencode.String("b")}},
			"d4:spaml1:a1:bee",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bencode.Encode(tc.value); !bytes.Equal(got, []byte(tc.want)) {
				t.Fatalf("Encode(%#v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestEncodeSortsKeysByBytes(t *testing.T) {
	// "Z" (0x5a) sorts before "a" (0x61), "a" before "aa", and the 0xff key
	// sorts after everything ASCII. Map iteration order is irrelevant.
	d := bencode.Dict{
		"aa":   bencode.Integer(3),
		"\xff": bencode.Integer(5),
		"a":    bencode.Integer(2),
		"Z":    bencode.Integer(1),
		"ab":   bencode.Integer(4),
	}
	want := "d1:Zi1e1:ai2e2:aai3e2:abi4e1:\xffi5ee"
	for i := 0; i < 10; i++ {
		if got := bencode.Encode(d); string(got) != want {
			t.Fatalf("Encode = %q, want %q", got, want)
		}
	}
}

func TestEncodeCanonicalizesKeyOrder(t *testing.T) {
	v, err := bencode.Decode([]byte("d1:bi2e1:ai1ee"))
	if err != nil {
		t.Fatalf("decode unsorted dict: %v", err)
	}
	if got := bencode.Encode(v); string(got) != "d1:ai1e1:bi2ee" {
		t.Fatalf("re-encode = %q, want canonical order", got)
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []bencode.Value{
		bencode.Integer(-123456789),
		bencode.String("plain"),
		bencode.String{0x00, 0xde, 0xad},
		bencode.List{},
		bencode.List{bencode.Integer(1), bencode.List{bencode.String("x")}},
		bencode.Dict{},
		bencode.Dict{
			"announce": bencode.String("udp://tracker.example:1337"),
			"info": bencode.Dict{
				"name":         bencode.String("file.iso"),
				"piece length": bencode.Integer(262144),
				"pieces":       bencode.String(bytes.Repeat([]byte{0xab}, 40)),
				"private":      bencode.Integer(1),
			},
			"url-list": bencode.List{bencode.String("http://host/path/")},
		},
	}

	for _, tree := range trees {
		encoded := bencode.Encode(tree)
		decoded, err := bencode.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(Encode(%#v)) failed: %v", tree, err)
		}
		if !reflect.DeepEqual(decoded, tree) {
			t.Fatalf("round trip mismatch: got %#v, want %#v", decoded, tree)
		}
	}
}

func TestCanonicalBytesSurviveRoundTrip(t *testing.T) {
	// Already-canonical input must reproduce itself exactly.
	canonical := "d8:announce33:udp://tracker.opentrackr.org:13374:infod5:filesld6:lengthi100e4:pathl3:dir5:a.bineee4:name4:dist12:piece lengthi16384eee"
	v, err := bencode.Decode([]byte(canonical))
	if err != nil {
		t.Fatalf("decode canonical document: %v", err)
	}
	if got := bencode.Encode(v); string(got) != canonical {
		t.Fatalf("canonical bytes changed:\n got %q\nwant %q", got, canonical)
	}
}
