//go:build rp2040

package main

import (
	"crazyclock/core"
	"crazyclock/policy"
	"device/rp"
	"machine"
	"runtime/interrupt"
)

// Coil pins must be consecutive for the PIO backend
const (
	coilPinA = core.GPIOPin(2)
	coilPinB = core.GPIOPin(3)
)

var (
	clock   *core.Clock
	counter SliceCounter
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	debugPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	debugPin.Low()

	if lockupOnOverrun {
		core.SetDebugWriter(func(msg string) {
			machine.Serial.Write([]byte(msg))
			machine.Serial.Write([]byte("\r\n"))
		})
		core.SetDebugEnabled(true)
	}

	nv, err := NewEEPROM()
	if err != nil {
		PinFault{}.Halt(err)
	}

	cfg := core.DefaultConfig(core.Profile32kHz)
	cfg.Trim = softwareTrim
	cfg.LockupOnOverrun = lockupOnOverrun

	clock, err = core.NewClock(cfg, core.Hardware{
		Timer:   counter,
		Sleeper: WFISleeper{},
		Coil:    newCoilBackend(),
		NV:      nv,
		Fault:   PinFault{},
		CoilA:   coilPinA,
		CoilB:   coilPinB,
	})
	if err != nil {
		PinFault{}.Halt(err)
	}

	if err := clock.Start(); err != nil {
		PinFault{}.Halt(err)
	}
	counter.Configure(cfg.Profile.TimerPrescale)

	irq := interrupt.New(rp.IRQ_PWM_IRQ_WRAP, func(interrupt.Interrupt) {
		counter.Ack()
		clock.HandleInterrupt()
	})
	irq.Enable()

	clock.Run(policy.NewLazy(clock.Seeds(), clock.Pulses()))
}
