package bytestr

// Equal reports whether a and b hold the same bytes.
func Equal(a, b View) bool {
	x, y := a.bytes(), b.bytes()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Index returns the offset of the first occurrence of needle in haystack at
// or after start, or -1. An empty needle is never found.
func Index(needle, haystack View, start int) int {
	return index(needle.bytes(), haystack.bytes(), start)
}

// LastIndex returns the offset of the last occurrence of needle in haystack
// that ends at least start bytes before the end of haystack, or -1.
func LastIndex(needle, haystack View, start int) int {
	return lastIndex(needle.bytes(), haystack.bytes(), start)
}

func index(needle, haystack []byte, start int) int {
	if len(needle) == 0 {
		return -1
	}
	if start < 0 {
		start = 0
	}
	for i := start; i+len(needle) <= len(haystack); i++ {
		if matchAt(needle, haystack, i) {
			return i
		}
	}
	return -1
}

func lastIndex(needle, haystack []byte, start int) int {
	if len(needle) == 0 {
		return -1
	}
	if start < 0 {
		start = 0
	}
	for i := len(haystack) - start - len(needle); i >= 0; i-- {
		if matchAt(needle, haystack, i) {
			return i
		}
	}
	return -1
}

func matchAt(needle, haystack []byte, i int) bool {
	for j := range needle {
		if haystack[i+j] != needle[j] {
			return false
		}
	}
	return true
}

// CountByte returns the number of bytes in v equal to c.
func CountByte(v View, c byte) int {
	n := 0
	for _, x := range v.bytes() {
		if x == c {
			n++
		}
	}
	return n
}

// Count returns the number of occurrences of needle in haystack. Without
// CountOverlap a match skips past the whole needle. An empty needle or
// haystack counts 0.
func Count(needle, haystack View, flags CountFlags) int {
	nb, hb := needle.bytes(), haystack.bytes()
	if len(nb) == 0 || len(hb) == 0 {
		return 0
	}
	n := 0
	for i := 0; i+len(nb) <= len(hb); i++ {
		if !matchAt(nb, hb, i) {
			continue
		}
		n++
		if flags&CountOverlap == 0 {
			i += len(nb) - 1
		}
	}
	return n
}

// HasPrefix reports whether v begins with prefix.
func HasPrefix(prefix, v View) bool {
	p, b := prefix.bytes(), v.bytes()
	return len(p) <= len(b) && matchAt(p, b, 0)
}

// HasSuffix reports whether v ends with suffix.
func HasSuffix(suffix, v View) bool {
	s, b := suffix.bytes(), v.bytes()
	return len(s) <= len(b) && matchAt(s, b, len(b)-len(s))
}

// Strip trims bytes found in charset from the ends of v selected by flags.
// It returns the borrowed remainder and the total number of bytes removed.
func Strip(charset, v View, flags StripFlags) (View, int) {
	set := charset.bytes()
	b := v.bytes()
	lo, hi := 0, len(b)
	if flags&StripLeft != 0 {
		for lo < hi && containsByte(set, b[lo]) {
			lo++
		}
	}
	if flags&StripRight != 0 {
		for hi > lo && containsByte(set, b[hi-1]) {
			hi--
		}
	}
	return v.Slice(lo, hi-lo), len(b) - (hi - lo)
}

func containsByte(set []byte, c byte) bool {
	for _, x := range set {
		if x == c {
			return true
		}
	}
	return false
}
