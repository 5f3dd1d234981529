//go:build attiny85

package main

import (
	"device/avr"
	"errors"
	"io"
	"runtime/interrupt"
)

// 512 bytes of on-chip EEPROM
const eepromSize = 512

var errEEPROMRange = errors.New("eeprom: offset out of range")

// EEPROM implements core.NVStore on the on-chip EEPROM
type EEPROM struct{}

func (EEPROM) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= eepromSize {
		return 0, errEEPROMRange
	}
	n := 0
	for ; n < len(p) && off+int64(n) < eepromSize; n++ {
		p[n] = eepromRead(uint16(off) + uint16(n))
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (EEPROM) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > eepromSize {
		return 0, errEEPROMRange
	}
	for n, b := range p {
		eepromWrite(uint16(off)+uint16(n), b)
	}
	return len(p), nil
}

func eepromWait() {
	for avr.EECR.HasBits(avr.EECR_EEPE) {
	}
}

func eepromRead(addr uint16) byte {
	eepromWait()
	avr.EEARH.Set(uint8(addr >> 8))
	avr.EEARL.Set(uint8(addr))
	avr.EECR.SetBits(avr.EECR_EERE)
	return avr.EEDR.Get()
}

// eepromWrite does an atomic erase and write. EEPE must be set within four
// cycles of EEMPE, so interrupts stay off across the pair.
func eepromWrite(addr uint16, b byte) {
	eepromWait()
	avr.EECR.Set(0)
	avr.EEARH.Set(uint8(addr >> 8))
	avr.EEARL.Set(uint8(addr))
	avr.EEDR.Set(b)
	state := interrupt.Disable()
	avr.EECR.SetBits(avr.EECR_EEMPE)
	avr.EECR.SetBits(avr.EECR_EEPE)
	interrupt.Restore(state)
}
