// Package simd provides the delimiter-scanning primitives the lexer (C6)
// uses to find the next segment boundary in a single linear pass.
//
// This is a direct port of coregx/simd's SWAR (SIMD Within A Register)
// memchr family: the algorithm processes 8 bytes at a time via uint64
// bitwise zero-byte detection rather than comparing byte-by-byte. coregx
// gates a true AVX2 assembly path behind this fallback on amd64; this
// repo keeps only the portable Go fallback (caps.go detects CPU features
// but dispatches nothing) and uses it on every platform, since schema delimiter sets are rarely
// larger than three or four bytes and the SWAR path already saturates
// memory bandwidth for that case.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const lo8 = 0x0101010101010101
const hi8 = 0x8080808080808080

// Memchr returns the index of the first occurrence of needle in
// haystack, or -1 if absent.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}
	mask := uint64(needle) * lo8
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		if hasZero := (xor - lo8) &^ xor & hi8; hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first occurrence of either needle, or
// -1 if neither is present.
func Memchr2(haystack []byte, n1, n2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == n1 || haystack[i] == n2 {
				return i
			}
		}
		return -1
	}
	m1, m2 := uint64(n1)*lo8, uint64(n2)*lo8
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor1, xor2 := chunk^m1, chunk^m2
		hz1 := (xor1 - lo8) &^ xor1 & hi8
		hz2 := (xor2 - lo8) &^ xor2 & hi8
		if hz := hz1 | hz2; hz != 0 {
			return i + bits.TrailingZeros64(hz)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == n1 || haystack[i] == n2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first occurrence of any of three
// needles, or -1 if none are present.
func Memchr3(haystack []byte, n1, n2, n3 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			b := haystack[i]
			if b == n1 || b == n2 || b == n3 {
				return i
			}
		}
		return -1
	}
	m1, m2, m3 := uint64(n1)*lo8, uint64(n2)*lo8, uint64(n3)*lo8
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor1, xor2, xor3 := chunk^m1, chunk^m2, chunk^m3
		hz1 := (xor1 - lo8) &^ xor1 & hi8
		hz2 := (xor2 - lo8) &^ xor2 & hi8
		hz3 := (xor3 - lo8) &^ xor3 & hi8
		if hz := hz1 | hz2 | hz3; hz != 0 {
			return i + bits.TrailingZeros64(hz)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		b := haystack[i]
		if b == n1 || b == n2 || b == n3 {
			return i
		}
	}
	return -1
}

// IsASCII reports whether every byte in data has its high bit clear.
// Ported from coregx/simd's SWAR IsASCII; used to validate pattern
// literals stay within the restricted ASCII dialect without a branch
// per byte.
func IsASCII(data []byte) bool {
	n := len(data)
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if chunk&hi8 != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
