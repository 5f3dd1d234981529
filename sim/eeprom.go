package sim

import (
	"errors"
	"io"
)

var ErrOutOfRange = errors.New("eeprom address out of range")

// EEPROM is byte-addressed non-volatile memory that counts its writes
type EEPROM struct {
	data   []byte
	writes uint32
}

// NewEEPROM creates an erased EEPROM of size bytes
func NewEEPROM(size int) *EEPROM {
	e := &EEPROM{data: make([]byte, size)}
	for i := range e.data {
		e.data[i] = 0xff
	}
	return e
}

// ReadAt implements io.ReaderAt
func (e *EEPROM) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(e.data)) {
		return 0, io.EOF
	}
	n := copy(p, e.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt
func (e *EEPROM) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > int64(len(e.data)) {
		return 0, ErrOutOfRange
	}
	e.writes++
	return copy(e.data[off:], p), nil
}

// Writes returns the number of write operations so far
func (e *EEPROM) Writes() uint32 {
	return e.writes
}

// Bytes returns a copy of the contents
func (e *EEPROM) Bytes() []byte {
	return append([]byte(nil), e.data...)
}
