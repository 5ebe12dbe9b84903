package bytestr

const hexDigits = "0123456789abcdef"

// escapes maps every byte to its escaped form.
var escapes = func() [256]string {
	var t [256]string
	for c := 0; c < 256; c++ {
		switch {
		case c >= 0x20 && c < 0x7f:
			t[c] = string(rune(c))
		default:
			t[c] = `\x` + string(hexDigits[c>>4]) + string(hexDigits[c&0xf])
		}
	}
	t[0] = `\0`
	t['\a'] = `\a`
	t['\b'] = `\b`
	t['\t'] = `\t`
	t['\n'] = `\n`
	t['\v'] = `\v`
	t['\f'] = `\f`
	t['\r'] = `\r`
	t['\\'] = `\\`
	t['"'] = `\"`
	t['\''] = `\'`
	return t
}()

// Escape returns a printable copy of v: control and non-ASCII bytes become
// C-style mnemonics or \xHH escapes, quotes and backslashes are escaped.
func Escape(v View) *Buffer {
	src := v.bytes()
	out := Alloc(nil)
	out.ensureCapacity(len(src))
	for _, c := range src {
		out.push(RefString(escapes[c]).data)
	}
	return out
}
