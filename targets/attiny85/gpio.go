//go:build attiny85

package main

import (
	"crazyclock/core"
	"machine"
)

// PortBDriver implements core.GPIODriver on port B. Pin numbers are PBn.
type PortBDriver struct{}

func (PortBDriver) ConfigureOutput(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return nil
}

func (PortBDriver) SetPin(pin core.GPIOPin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}
