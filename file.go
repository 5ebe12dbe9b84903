package bytestr

import (
	"fmt"
	"io"
	"os"
)

// ReadFile reads the whole of r into a new buffer. The size is taken by
// seeking to the end, then r is rewound and read in one pass.
func ReadFile(r io.ReadSeeker, opts ...Option) (*Buffer, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("bytestr: seek end: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("bytestr: rewind: %w", err)
	}
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	b.buf = make([]byte, computeCapacity(int(size), b.floor()))
	if _, err := io.ReadFull(r, b.buf[:size]); err != nil {
		return nil, fmt.Errorf("bytestr: read %d bytes: %w", size, err)
	}
	b.n = int(size)
	return b, nil
}

// ReadFilePath opens path and reads it with ReadFile.
func ReadFilePath(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFile(f, opts...)
}
