// Package zc (zero-copy) holds the unsafe aliasing helpers used by borrowed
// string views. Everything here shares memory with its input: the caller
// must keep the source alive and must not modify bytes obtained from a string.
package zc

import "unsafe"

// Bytes aliases the bytes of s without copying.
// The returned slice must never be written to.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String aliases b as a string without copying.
// b must not be modified while the string is in use.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// SameArray reports whether a and b start at the same address.
func SameArray(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
