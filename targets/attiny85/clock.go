//go:build attiny85

package main

import (
	"crazyclock/core"
	"device/avr"
	"runtime/interrupt"
	"time"
)

// setClockPrescaler divides the system clock down to the profile's rate.
// CLKPCE must be followed by the new value within four cycles.
func setClockPrescaler() {
	state := interrupt.Disable()
	avr.CLKPR.Set(avr.CLKPR_CLKPCE)
	avr.CLKPR.Set(clockPrescaleBits)
	interrupt.Restore(state)
}

// Timer1 times delays at the system clock divided by 16. It is powered
// only while a delay runs. The runtime's sleep is not used because timer0
// belongs to the tick generator.
const (
	delayPrescale = 16
	tccr1CK16     = avr.TCCR1_CS12 | avr.TCCR1_CS10
)

// Converting a duration takes 64-bit arithmetic, which is slow at these
// clock rates, so the last conversion is kept. Pulses all have one width.
var (
	lastDelay  time.Duration
	lastCounts uint32
)

func delayCounts(d time.Duration) uint32 {
	if d != lastDelay {
		lastDelay = d
		lastCounts = core.DelayCounts(d, profile.ClockHz, delayPrescale)
	}
	return lastCounts
}

// busyDelay spins until timer1 has counted d. A pass of the polling loop,
// even with the tick interrupt landing in it, is far shorter than 256
// timer1 counts, so the 8-bit counter never laps between reads.
func busyDelay(d time.Duration) {
	counts := delayCounts(d)

	avr.PRR.ClearBits(avr.PRR_PRTIM1)
	avr.TCNT1.Set(0)
	avr.TCCR1.Set(tccr1CK16)

	core.WaitCounts(counts, avr.TCNT1.Get)

	avr.TCCR1.Set(0)
	avr.PRR.SetBits(avr.PRR_PRTIM1)
}

// PinFault implements core.FaultSignal
type PinFault struct {
	gpio core.GPIODriver
}

// Halt raises the debug pin and spins with interrupts off
func (f PinFault) Halt(err error) {
	interrupt.Disable()
	f.gpio.SetPin(debugPin, true)
	for {
	}
}
