//go:build rp2040

package main

import (
	"crazyclock/core"
	"machine"
	"runtime/interrupt"
)

// Spare pin raised on a fatal lockup
const debugPin = machine.GP6

// PinFault implements core.FaultSignal
type PinFault struct{}

// Halt raises the debug pin and spins with interrupts off
func (PinFault) Halt(err error) {
	interrupt.Disable()
	debugPin.High()
	core.DebugPrintln("[FAULT] " + err.Error())
	for {
	}
}
