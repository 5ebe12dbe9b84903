package bytestr

// DefaultMinCapacity is the smallest backing array an owned buffer allocates.
const DefaultMinCapacity = 0x80

// Flags describe what a string value holds.
type Flags uint8

const (
	// FlagValid marks a value with meaningful content.
	FlagValid Flags = 1 << iota
	// FlagHeap marks a value that owns its backing array.
	FlagHeap
)

// Has reports whether all bits of want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

func (f Flags) String() string {
	switch f {
	case 0:
		return "invalid"
	case FlagValid:
		return "ref"
	case FlagValid | FlagHeap:
		return "heap"
	default:
		return "?"
	}
}

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithMinCapacity sets the smallest backing array the buffer allocates.
// Non-positive values keep DefaultMinCapacity.
func WithMinCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.minCap = n
		}
	}
}

// ReplaceFlags control Buffer.Replace.
type ReplaceFlags uint8

const (
	// ReplaceAll replaces every occurrence instead of the first one.
	ReplaceAll ReplaceFlags = 1 << iota
	// ReplaceFromRight searches from the end of the buffer.
	ReplaceFromRight
)

// CountFlags control Count.
type CountFlags uint8

const (
	// CountOverlap counts overlapping occurrences.
	CountOverlap CountFlags = 1 << iota
)

// StripFlags control Strip.
type StripFlags uint8

const (
	// StripLeft strips from the beginning.
	StripLeft StripFlags = 1 << iota
	// StripRight strips from the end.
	StripRight

	StripBoth = StripLeft | StripRight
)
