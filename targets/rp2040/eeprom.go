//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/at24cx"
)

// I2C0 on GP4 (SDA) and GP5 (SCL), AT24C32 at the default address
var (
	eepromSDA = machine.GP4
	eepromSCL = machine.GP5
)

// NewEEPROM configures I2C0 and returns the AT24Cxx device, which serves
// as the non-volatile store for the seed and trim slots.
func NewEEPROM() (*at24cx.Device, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 100 * machine.KHz,
		SDA:       eepromSDA,
		SCL:       eepromSCL,
	})
	if err != nil {
		return nil, err
	}

	dev := at24cx.New(machine.I2C0)
	dev.Configure(at24cx.Config{})
	return &dev, nil
}
