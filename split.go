package bytestr

import "iter"

// Splitter walks the spans of a value between occurrences of a delimiter.
// It is finite and can only be restarted from the beginning.
type Splitter struct {
	src   View
	delim View
	pos   int
	done  bool
}

// Split returns a Splitter over v. A value without the delimiter, or an
// empty delimiter, yields v once.
func Split(v, delim View) *Splitter {
	return &Splitter{src: v, delim: delim}
}

// Next returns the next span. It reports false once the value is exhausted.
func (s *Splitter) Next() (View, bool) {
	if s.done {
		return View{}, false
	}
	b := s.src.bytes()
	d := s.delim.bytes()
	i := index(d, b, s.pos)
	if i < 0 {
		s.done = true
		return s.src.Slice(s.pos, len(b)-s.pos), true
	}
	part := s.src.Slice(s.pos, i-s.pos)
	s.pos = i + len(d)
	return part, true
}

// Reset rewinds the splitter to the start of the value.
func (s *Splitter) Reset() {
	s.pos = 0
	s.done = false
}

// All rewinds the splitter and yields every span.
func (s *Splitter) All() iter.Seq[View] {
	return func(yield func(View) bool) {
		s.Reset()
		for {
			part, ok := s.Next()
			if !ok || !yield(part) {
				return
			}
		}
	}
}
