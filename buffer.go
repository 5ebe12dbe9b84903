package bytestr

import (
	"go.uber.org/zap"
)

// Buffer is an owned, growable string value.
//
// The zero value is an empty buffer ready to use. A Buffer must not be
// copied after first use and is not safe for concurrent use.
type Buffer struct {
	buf      []byte // len(buf) is the capacity
	n        int
	minCap   int
	gen      uint64
	released bool
}

// Alloc copies b into a new buffer sized by the growth policy.
func Alloc(b []byte, opts ...Option) *Buffer {
	buf := &Buffer{}
	for _, opt := range opts {
		opt(buf)
	}
	buf.buf = make([]byte, computeCapacity(len(b), buf.floor()))
	buf.n = copy(buf.buf, b)
	return buf
}

// AllocString copies s into a new buffer.
func AllocString(s string, opts ...Option) *Buffer {
	return Alloc(RefString(s).data, opts...)
}

// Clone copies the visible bytes of v into a new buffer, whatever v borrows.
func Clone(v View) *Buffer {
	return Alloc(v.bytes())
}

// computeCapacity returns floor when n fits under it, otherwise the least
// power of two strictly greater than n.
func computeCapacity(n, floor int) int {
	if floor <= 0 {
		floor = DefaultMinCapacity
	}
	if n < floor {
		return floor
	}
	c := 1
	for c <= n {
		c <<= 1
	}
	return c
}

func (b *Buffer) floor() int {
	if b.minCap > 0 {
		return b.minCap
	}
	return DefaultMinCapacity
}

// ensureCapacity grows the backing array so it holds at least needed bytes.
// Capacity doubles from its current value; it never shrinks.
func (b *Buffer) ensureCapacity(needed int) {
	c := len(b.buf)
	if needed <= c {
		return
	}
	if c == 0 {
		c = computeCapacity(needed, b.floor())
	}
	for c < needed {
		c *= 2
	}
	nb := make([]byte, c)
	copy(nb, b.buf[:b.n])
	Logger().Debug("bytestr: buffer grown",
		zap.Int("from", len(b.buf)),
		zap.Int("to", c))
	b.buf = nb
}

// touch invalidates every view taken so far.
func (b *Buffer) touch() { b.gen++ }

func (b *Buffer) live(op string) error {
	if b.released {
		Logger().Warn("bytestr: operation on released buffer", zap.String("op", op))
		return ErrReleased
	}
	return nil
}

// View borrows the current contents. The view is invalidated by the next
// mutation or by Release.
func (b *Buffer) View() View {
	return View{data: b.buf[:b.n:b.n], valid: !b.released, owner: b, gen: b.gen}
}

// Len returns the byte length.
func (b *Buffer) Len() int { return b.n }

// Cap returns the allocated capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Flags reports FlagValid|FlagHeap, or 0 once released.
func (b *Buffer) Flags() Flags {
	if b.released {
		return 0
	}
	return FlagValid | FlagHeap
}

// String copies the contents into a Go string.
func (b *Buffer) String() string {
	return string(b.buf[:b.n])
}

// Slice borrows a clamped sub-range of the buffer. See View.Slice.
func (b *Buffer) Slice(off, n int) View {
	return b.View().Slice(off, n)
}

// SliceCopy copies a clamped sub-range into a new buffer.
func (b *Buffer) SliceCopy(off, n int) *Buffer {
	return Clone(b.Slice(off, n))
}

// Release zeroes and drops the backing array and resets the buffer to its
// released state. Views taken earlier become stale. Releasing twice is a no-op.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	clear(b.buf[:b.n])
	b.buf = nil
	b.n = 0
	b.released = true
	b.touch()
}
