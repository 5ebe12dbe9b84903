// Package bytestr provides byte strings that either borrow memory (View) or
// own a growable heap buffer (*Buffer), with search, split, strip, escape and
// splice operations over them.
//
// Ownership is carried by the type: only *Buffer has mutating methods, so a
// borrowed view cannot be written through. A View taken from a Buffer is
// tied to the buffer's current generation; any later mutation or Release
// makes the view stale, and reading it panics with a *StaleViewError instead
// of silently observing moved bytes.
//
// Basic usage:
//
//	b := bytestr.AllocString("Hello, foo foo bar!")
//	defer b.Release()
//	b.Replace(bytestr.RefString("foo"), bytestr.RefString("bar"), 0)
//	b.String() // "Hello, bar foo bar!"
//
// Owned buffers start at DefaultMinCapacity bytes and double whenever an
// append needs more room. Offsets passed to slicing and stripping are clamped
// to the value, never rejected.
package bytestr
