package bytestr

import (
	"github.com/rawbytedev/bytestr/zc"
	"go.uber.org/zap"
)

// View is a borrowed, read-only string value. It never owns its bytes.
//
// A view taken from a Buffer remembers the buffer's generation; once the
// buffer is mutated or released, every access through the view panics with
// a *StaleViewError. Views over caller memory (Ref, RefString) carry no such
// check: the caller keeps that memory alive and unmodified.
type View struct {
	data  []byte
	valid bool
	owner *Buffer
	gen   uint64
}

// Ref borrows b without copying.
func Ref(b []byte) View {
	return View{data: b, valid: true}
}

// RefString borrows the bytes of s without copying.
func RefString(s string) View {
	return View{data: zc.Bytes(s), valid: true}
}

// Err reports whether the view can still be read.
func (v View) Err() error {
	if v.owner != nil && v.owner.gen != v.gen {
		return &StaleViewError{Taken: v.gen, Current: v.owner.gen}
	}
	return nil
}

// bytes returns the viewed bytes, failing on a stale view.
func (v View) bytes() []byte {
	if err := v.Err(); err != nil {
		Logger().Warn("bytestr: stale view used",
			zap.Int("len", len(v.data)),
			zap.Error(err))
		panic(err)
	}
	return v.data
}

// Bytes returns the viewed bytes. The slice aliases the source and must not
// be modified.
func (v View) Bytes() []byte { return v.bytes() }

// Len returns the byte length.
func (v View) Len() int { return len(v.bytes()) }

// Cap is always 0: views own no buffer.
func (v View) Cap() int { return 0 }

// Flags reports FlagValid for any constructed view and 0 for the zero View.
func (v View) Flags() Flags {
	if !v.valid {
		return 0
	}
	return FlagValid
}

// String copies the viewed bytes into a Go string.
func (v View) String() string { return string(v.bytes()) }

// UnsafeString aliases the viewed bytes as a string without copying.
// The string is only valid as long as the view is.
func (v View) UnsafeString() string { return zc.String(v.bytes()) }

// At returns the byte at i.
func (v View) At(i int) byte { return v.bytes()[i] }

// Slice returns a zero-copy sub-view. Out-of-range offsets and lengths are
// clamped to the view; Slice never fails.
func (v View) Slice(off, n int) View {
	b := v.bytes()
	off, n = clampRange(len(b), off, n)
	return View{data: b[off : off+n : off+n], valid: true, owner: v.owner, gen: v.gen}
}

// SliceCopy is Slice copied into a new owned buffer.
func (v View) SliceCopy(off, n int) *Buffer {
	return Clone(v.Slice(off, n))
}

// clampRange clamps off and n to a sequence of length size.
func clampRange(size, off, n int) (int, int) {
	if off < 0 {
		off = 0
	}
	if off > size {
		off = size
	}
	if n < 0 {
		n = 0
	}
	if n > size-off {
		n = size - off
	}
	return off, n
}

// ToNulTerminated copies v into a fresh array with a trailing 0x00.
// It always allocates so the caller owns the result outright.
func ToNulTerminated(v View) []byte {
	b := v.bytes()
	out := make([]byte, len(b)+1)
	copy(out, b)
	return out
}
