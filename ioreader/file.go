package ioreader

import (
	"bufio"
	"os"
)

// FileReader is a buffered, file-backed ByteReader.
type FileReader struct {
	f  *os.File
	br *bufio.Reader
}

// NewFile opens path and returns a buffered ByteReader over it. The
// caller must call Close when done.
func NewFile(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileReader{f: f, br: bufio.NewReader(f)}, nil
}

// ReadByte implements ByteReader.
func (r *FileReader) ReadByte() (byte, error) {
	return r.br.ReadByte()
}

// Close releases the underlying file handle.
func (r *FileReader) Close() error {
	return r.f.Close()
}
