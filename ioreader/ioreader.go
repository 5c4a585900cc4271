// Package ioreader defines the byte-producer contract the lexer
// consumes, plus two concrete readers: a buffered file-backed reader
// and an in-memory reader.
package ioreader

import "io"

// ByteReader is the pull interface the lexer consumes. It follows Go
// idiom (io.EOF as the end-of-stream sentinel) rather than a literal
// `Byte | EndOfStream | IoError(kind)` enum — io.Reader-family
// interfaces are how every reader in the ecosystem signals both
// conditions already, and introducing a parallel enum would only make
// this package harder to compose with the rest of it (bufio, os.File,
// bytes.Reader all speak io.ByteReader already).
type ByteReader interface {
	// ReadByte returns the next byte, or an error. io.EOF signals clean
	// end-of-stream; any other error is an I/O error to be surfaced to
	// the lexer's caller.
	ReadByte() (byte, error)
}

// Ensure the standard library's io.ByteReader is usable directly.
var _ ByteReader = io.ByteReader(nil)
