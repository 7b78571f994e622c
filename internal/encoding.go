package internal

import "bytes"

// ArrayBuffer accumulates a JSON array from individually encoded
// elements. json.Encoder terminates every value with a newline, which
// the buffer strips so the output is compact.
type ArrayBuffer struct {
	buf   bytes.Buffer
	count int
}

// Write adds one encoded element to the array, inserting the separator
// as needed. Whitespace around the element is dropped.
func (b *ArrayBuffer) Write(in []byte) (int, error) {
	b.sep()
	_, _ = b.buf.Write(bytes.TrimSpace(in))
	return len(in), nil
}

// Bytes returns the complete array, including the brackets.
func (b *ArrayBuffer) Bytes() []byte {
	out := make([]byte, 0, b.buf.Len()+2)
	out = append(out, '[')
	out = append(out, b.buf.Bytes()...)
	return append(out, ']')
}

func (b *ArrayBuffer) sep() {
	if b.count > 0 {
		_ = b.buf.WriteByte(',')
	}
	b.count++
}
