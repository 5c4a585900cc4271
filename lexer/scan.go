package lexer

import (
	"github.com/logsurgeon/logsurgeon-go/internal/simd"
	"github.com/logsurgeon/logsurgeon-go/schema"
)

// scanToDelimiter finds the first delimiter byte in data, dispatching to
// internal/simd's SWAR scanners for the common one/two/three-delimiter
// schemas and falling back to the schema's O(1) bitset membership test
// for larger delimiter sets, where a fixed-arity memchr no longer
// applies.
func scanToDelimiter(data []byte, fast []byte, delims schema.DelimSet) (int, bool) {
	switch len(fast) {
	case 0:
		return 0, false
	case 1:
		idx := simd.Memchr(data, fast[0])
		return idx, idx >= 0
	case 2:
		idx := simd.Memchr2(data, fast[0], fast[1])
		return idx, idx >= 0
	case 3:
		idx := simd.Memchr3(data, fast[0], fast[1], fast[2])
		return idx, idx >= 0
	default:
		for i, b := range data {
			if delims.Contains(b) {
				return i, true
			}
		}
		return 0, false
	}
}
