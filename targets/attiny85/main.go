//go:build attiny85

package main

import (
	"crazyclock/core"
	"crazyclock/policy"
	"device/avr"
	"runtime/interrupt"
)

// PB0 and PB1 drive the coil, PB2 is the spare debug pin
const (
	coilPinA = core.GPIOPin(0)
	coilPinB = core.GPIOPin(1)
	debugPin = core.GPIOPin(2)
)

var clock *core.Clock

func main() {
	setClockPrescaler()
	powerDownPeripherals()
	delayCounts(core.PulseWidth)

	gpio := &PortBDriver{}
	gpio.ConfigureOutput(debugPin)

	cfg := core.DefaultConfig(profile)
	cfg.Trim = softwareTrim
	cfg.LockupOnOverrun = lockupOnOverrun

	fault := PinFault{gpio: gpio}

	var err error
	clock, err = core.NewClock(cfg, core.Hardware{
		Timer:   Timer0{},
		Sleeper: IdleSleeper{},
		Coil:    core.NewGPIOCoil(gpio, busyDelay),
		NV:      EEPROM{},
		Fault:   fault,
		CoilA:   coilPinA,
		CoilB:   coilPinB,
	})
	if err != nil {
		fault.Halt(err)
	}

	if err := clock.Start(); err != nil {
		fault.Halt(err)
	}
	Timer0{}.Configure()

	// AVR vectors are bound at link time; OCIE0A is the enable
	interrupt.New(avr.IRQ_TIMER0_COMPA, func(interrupt.Interrupt) {
		clock.HandleInterrupt()
	})

	clock.Run(policy.NewLazy(clock.Seeds(), clock.Pulses()))
}

// powerDownPeripherals turns off the ADC, the analog comparator and the
// USI, none of which the clock uses. Timer1 is powered back up for delays.
func powerDownPeripherals() {
	avr.ADCSRA.ClearBits(avr.ADCSRA_ADEN)
	avr.ACSR.SetBits(avr.ACSR_ACD)
	avr.PRR.SetBits(avr.PRR_PRADC | avr.PRR_PRUSI | avr.PRR_PRTIM1)
}
