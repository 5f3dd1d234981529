package core

import (
	"encoding/binary"
	"io"
)

// NVStore is byte-addressed non-volatile storage (EEPROM or flash).
// Write failures are not retried; the medium is assumed reliable.
type NVStore interface {
	io.ReaderAt
	io.WriterAt
}

// Non-volatile layout
const (
	NVSeedOffset = 0 // int32, little-endian
	NVSeedSize   = 4
	NVTrimOffset = 4 // int16, little-endian, tenths of a ppm
	NVTrimSize   = 2
)

// ReadSeed reads the persisted generator seed
func ReadSeed(nv NVStore) (int32, error) {
	var buf [NVSeedSize]byte
	if _, err := nv.ReadAt(buf[:], NVSeedOffset); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// WriteSeed persists the generator seed
func WriteSeed(nv NVStore, seed int32) error {
	var buf [NVSeedSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(seed))
	_, err := nv.WriteAt(buf[:], NVSeedOffset)
	return err
}

// ReadTrim reads the persisted frequency trim
func ReadTrim(nv NVStore) (int16, error) {
	var buf [NVTrimSize]byte
	if _, err := nv.ReadAt(buf[:], NVTrimOffset); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

// WriteTrim persists the frequency trim. Used at calibration time only.
func WriteTrim(nv NVStore, trim int16) error {
	var buf [NVTrimSize]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(trim))
	_, err := nv.WriteAt(buf[:], NVTrimOffset)
	return err
}
