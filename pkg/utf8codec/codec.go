// Package utf8codec is a streaming UTF-8 codec: a byte-at-a-time decoder,
// a chainable encoder and codepoint navigation over byte sequences.
//
// Nothing here validates its input. Malformed sequences produce
// unspecified codepoints and offsets rather than errors.
package utf8codec

import (
	"iter"
	"math/bits"
)

const (
	contMask = 0xC0 // 1100 0000
	contTag  = 0x80 // 10xx xxxx
	payload  = 0x3F // 0011 1111
)

// Decoder assembles codepoints from bytes fed one at a time.
type Decoder struct {
	pending   uint8 // continuation bytes still expected
	codepoint rune
}

// NewDecoder returns a decoder ready for a new stream.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset prepares d for an unrelated stream.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Decode feeds the next byte and reports whether a codepoint is complete.
func (d *Decoder) Decode(b byte) bool {
	if d.pending == 0 {
		// Header: one leading 1 bit per byte in the sequence.
		n := bits.LeadingZeros8(^b)
		d.codepoint = rune(b & (0xFF >> n))
		if n > 0 {
			d.pending = uint8(n - 1)
		}
		return d.pending == 0
	}
	d.codepoint = d.codepoint<<6 | rune(b&payload)
	d.pending--
	return d.pending == 0
}

// Rune returns the codepoint assembled so far.
func (d *Decoder) Rune() rune { return d.codepoint }

// Pending returns the number of continuation bytes still expected.
func (d *Decoder) Pending() int { return int(d.pending) }

// Size returns the number of bytes Encode writes for cp.
func Size(cp rune) int {
	if uint32(cp) < 0x80 {
		return 1
	}
	n := 2
	for limit := uint64(1) << 11; uint64(uint32(cp)) >= limit; limit <<= 5 {
		n++
	}
	return n
}

// Encode writes cp at the start of dst and returns dst advanced past the
// written bytes, so calls can be chained into one buffer. It panics if dst
// is shorter than Size(cp).
func Encode(dst []byte, cp rune) []byte {
	c := uint32(cp)
	n := Size(cp)
	if n == 1 {
		dst[0] = byte(c)
		return dst[1:]
	}
	_ = dst[n-1]
	for i := n - 1; i > 0; i-- {
		dst[i] = contTag | byte(c&payload)
		c >>= 6
	}
	dst[0] = byte(uint32(0xFF00)>>n) | byte(c)
	return dst[n:]
}

// AppendRune appends the encoding of cp to dst.
func AppendRune(dst []byte, cp rune) []byte {
	n := Size(cp)
	l := len(dst)
	dst = append(dst, make([]byte, n)...)
	Encode(dst[l:], cp)
	return dst
}

func isCont(b byte) bool { return b&contMask == contTag }

// Skip returns the offset just past the codepoint starting at p[0].
func Skip(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	i := 1
	for i < len(p) && isCont(p[i]) {
		i++
	}
	return i
}

// Seek returns the byte offset of the codepoint with the given index,
// or len(p) when p holds fewer codepoints.
func Seek(p []byte, index int) int {
	off := 0
	for ; index > 0 && off < len(p); index-- {
		off += Skip(p[off:])
	}
	return off
}

// Count returns the number of codepoints in p.
func Count(p []byte) int {
	n := 0
	for _, b := range p {
		if !isCont(b) {
			n++
		}
	}
	return n
}

// CountNul counts codepoints up to the first 0x00 byte.
func CountNul(p []byte) int {
	n := 0
	for _, b := range p {
		if b == 0 {
			break
		}
		if !isCont(b) {
			n++
		}
	}
	return n
}

// CountString returns the number of codepoints in s.
func CountString(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isCont(s[i]) {
			n++
		}
	}
	return n
}

// Runes decodes p with a fresh Decoder.
func Runes(p []byte) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		d := NewDecoder()
		for _, b := range p {
			if d.Decode(b) && !yield(d.Rune()) {
				return
			}
		}
	}
}
