package bencode

import (
	"bytes"
	"sort"
	"strconv"
)

// Encode renders v in canonical form. Encoding cannot fail: the sealed
// Value interface only admits well-formed trees. Dictionary keys are always
// emitted in ascending byte order, whatever order the tree was built or
// decoded in; everything else reproduces its input bytes exactly.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	v.appendTo(&buf)
	return buf.Bytes()
}

func (i Integer) appendTo(buf *bytes.Buffer) {
	buf.WriteByte('i')
	buf.WriteString(strconv.FormatInt(int64(i), 10))
	buf.WriteByte('e')
}

func (s String) appendTo(buf *bytes.Buffer) {
	buf.WriteString(strconv.Itoa(len(s)))
	buf.WriteByte(':')
	buf.Write(s)
}

func (l List) appendTo(buf *bytes.Buffer) {
	buf.WriteByte('l')
	for _, v := range l {
		v.appendTo(buf)
	}
	buf.WriteByte('e')
}

func (d Dict) appendTo(buf *bytes.Buffer) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('d')
	for _, k := range keys {
		String(k).appendTo(buf)
		d[k].appendTo(buf)
	}
	buf.WriteByte('e')
}
