package bytestr

import (
	"fmt"

	"go.uber.org/zap"
)

// boundedWriter keeps at most len(buf) bytes but counts everything written,
// so a caller can tell the output was cut short.
type boundedWriter struct {
	buf   []byte
	n     int
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	w.total += len(p)
	return len(p), nil
}

// Format formats into a new buffer. See FormatN.
func Format(format string, args ...any) *Buffer {
	return FormatN(0, format, args...)
}

// FormatN formats into a new buffer whose first attempt holds size bytes.
// Whenever the output does not fit strictly inside the buffer, capacity
// doubles and formatting runs again; the result is never truncated.
func FormatN(size int, format string, args ...any) *Buffer {
	c := computeCapacity(size, DefaultMinCapacity)
	for {
		w := &boundedWriter{buf: make([]byte, c)}
		fmt.Fprintf(w, format, args...)
		if w.total < c {
			return &Buffer{buf: w.buf, n: w.n}
		}
		Logger().Debug("bytestr: format output exceeds buffer",
			zap.Int("capacity", c),
			zap.Int("needed", w.total))
		c *= 2
	}
}
