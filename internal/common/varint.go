package common

// MaxVarintLen is the longest encoding of a uint64.
const MaxVarintLen = 10

// WriteVarUintTo appends varint-encoded x to dst using a small stack scratch.
func WriteVarUintTo(dst []byte, x uint64) []byte {
	var scratch [MaxVarintLen]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// VarUintLen returns the number of bytes WriteVarUint emits for x.
func VarUintLen(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// It returns 0, 0 when b ends mid-varint or the value overflows 64 bits.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == MaxVarintLen {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
