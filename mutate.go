package bytestr

import (
	"math"

	"go.uber.org/zap"
)

// WriteByte appends c. It implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.live("WriteByte"); err != nil {
		return err
	}
	b.ensureCapacity(b.n + 1)
	b.buf[b.n] = c
	b.n++
	b.touch()
	return nil
}

// Push appends the bytes of suffix. suffix may be a view of b itself.
func (b *Buffer) Push(suffix View) error {
	if err := b.live("Push"); err != nil {
		return err
	}
	b.push(suffix.bytes())
	return nil
}

// Write appends p. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.live("Write"); err != nil {
		return 0, err
	}
	b.push(p)
	return len(p), nil
}

// WriteString appends s. It implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write(RefString(s).data)
}

// push appends p. p stays readable across a reallocation because the old
// array is only dropped, never reused.
func (b *Buffer) push(p []byte) {
	b.ensureCapacity(b.n + len(p))
	b.n += copy(b.buf[b.n:], p)
	b.touch()
}

// PopByte removes and returns the last byte. It reports false when the
// buffer is empty or released.
func (b *Buffer) PopByte() (byte, bool) {
	if b.released || b.n == 0 {
		return 0, false
	}
	b.n--
	b.touch()
	return b.buf[b.n], true
}

// PopN removes the last n bytes and returns them as a new buffer. It reports
// false and leaves b unchanged when n exceeds the length. Popping 0 bytes
// succeeds with an empty buffer.
func (b *Buffer) PopN(n int) (*Buffer, bool) {
	if b.released || n < 0 || n > b.n {
		return nil, false
	}
	out := Alloc(b.buf[b.n-n:b.n], WithMinCapacity(b.floor()))
	if n > 0 {
		b.n -= n
		b.touch()
	}
	return out, true
}

// InsertByte inserts c at pos, shifting the tail right. A position at or
// beyond the length appends.
func (b *Buffer) InsertByte(pos int, c byte) error {
	if err := b.live("InsertByte"); err != nil {
		return err
	}
	b.insert(pos, []byte{c})
	return nil
}

// Insert inserts infix at pos, shifting the tail right. A position at or
// beyond the length appends.
func (b *Buffer) Insert(pos int, infix View) error {
	if err := b.live("Insert"); err != nil {
		return err
	}
	b.insert(pos, infix.bytes())
	return nil
}

func (b *Buffer) insert(pos int, p []byte) {
	if pos >= b.n {
		b.push(p)
		return
	}
	if pos < 0 {
		pos = 0
	}
	// p may alias b.buf; detach it before shifting.
	p = append([]byte(nil), p...)
	b.ensureCapacity(b.n + len(p))
	copy(b.buf[pos+len(p):], b.buf[pos:b.n])
	copy(b.buf[pos:], p)
	b.n += len(p)
	b.touch()
}

// ReplaceRange splices repl over the n bytes at off. The result is built in a
// fresh array of prefix, replacement and suffix, then swapped in. n == 0
// inserts; off at or beyond the length appends; n past the end is clamped.
func (b *Buffer) ReplaceRange(off, n int, repl View) error {
	if err := b.live("ReplaceRange"); err != nil {
		return err
	}
	b.replaceRange(off, n, repl.bytes())
	return nil
}

func (b *Buffer) replaceRange(off, n int, repl []byte) {
	if n <= 0 {
		b.insert(off, repl)
		return
	}
	if off >= b.n {
		b.push(repl)
		return
	}
	off, n = clampRange(b.n, off, n)
	size := b.n - n + len(repl)
	c := max(len(b.buf), computeCapacity(size, b.floor()))
	nb := make([]byte, c)
	w := copy(nb, b.buf[:off])
	w += copy(nb[w:], repl)
	w += copy(nb[w:], b.buf[off+n:b.n])
	clear(b.buf[:b.n])
	b.buf = nb
	b.n = w
	b.touch()
}

// Replace substitutes repl for occurrences of pattern and returns how many
// were replaced. Each search restarts from the start (or, with
// ReplaceFromRight, the end) of the updated buffer, so occurrences formed by
// a previous replacement are found too. Without ReplaceAll it stops after the
// first match. An empty pattern replaces nothing.
//
// With ReplaceAll, a replacement containing the pattern fails with
// ErrReplaceLoop before the first splice. Replacements no shorter than the
// pattern can also rebuild it across a splice boundary, so they run under
// the budget from replaceBudget; exhausting it stops with ErrReplaceLoop and
// the replacements made so far are kept.
func (b *Buffer) Replace(pattern, repl View, flags ReplaceFlags) (int, error) {
	if err := b.live("Replace"); err != nil {
		return 0, err
	}
	pat := append([]byte(nil), pattern.bytes()...)
	rep := append([]byte(nil), repl.bytes()...)
	if len(pat) == 0 {
		return 0, nil
	}
	steps, maxLen := replaceBudget(b.n, len(pat), len(rep))

	count := 0
	for {
		var i int
		if flags&ReplaceFromRight != 0 {
			i = lastIndex(pat, b.buf[:b.n], 0)
		} else {
			i = index(pat, b.buf[:b.n], 0)
		}
		if i < 0 {
			break
		}
		if flags&ReplaceAll != 0 {
			if count == 0 && index(pat, rep, 0) >= 0 {
				Logger().Warn("bytestr: replace would not terminate",
					zap.ByteString("pattern", pat),
					zap.ByteString("replacement", rep))
				return 0, ErrReplaceLoop
			}
			if count >= steps || b.n-len(pat)+len(rep) > maxLen {
				Logger().Warn("bytestr: replace budget exhausted",
					zap.Int("replaced", count),
					zap.Int("len", b.n))
				return count, ErrReplaceLoop
			}
		}
		b.replaceRange(i, len(pat), rep)
		count++
		if flags&ReplaceAll == 0 {
			break
		}
	}
	return count, nil
}

// replaceBudget bounds a ReplaceAll run over n bytes. A shrinking
// replacement always finishes. An equal-length one may run occ*(n+1) splices,
// enough to bubble every byte across the buffer. A growing one may grow the
// buffer to twice the size of replacing occ occurrences in one pass.
func replaceBudget(n, patLen, repLen int) (steps, maxLen int) {
	occ := n/patLen + 1
	switch {
	case repLen < patLen:
		return math.MaxInt, math.MaxInt
	case repLen == patLen:
		return occ * (n + 1), n
	default:
		return math.MaxInt, 2 * (n + occ*(repLen-patLen))
	}
}
