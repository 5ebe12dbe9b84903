package bytestr

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when mutating a buffer after Release.
	ErrReleased = errors.New("bytestr: buffer released")
	// ErrStaleView is matched by StaleViewError.
	ErrStaleView = errors.New("bytestr: view outlived its buffer revision")
	// ErrReplaceLoop is returned by Replace when replacing every occurrence
	// would not terminate: the replacement contains the pattern, or the run
	// exceeded its budget.
	ErrReplaceLoop = errors.New("bytestr: replace does not terminate")
)

// StaleViewError reports a view taken from a buffer that has since been
// mutated or released.
type StaleViewError struct {
	Taken   uint64 // buffer generation when the view was taken
	Current uint64 // buffer generation at the time of use
}

func (e *StaleViewError) Error() string {
	return fmt.Sprintf("bytestr: stale view (taken at generation %d, buffer at %d)", e.Taken, e.Current)
}

func (e *StaleViewError) Is(target error) bool {
	return target == ErrStaleView
}
