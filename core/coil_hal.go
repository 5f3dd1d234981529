package core

import "time"

// Coil selects one of the two drive pins of the Lavet stepper coil
type Coil uint8

const (
	CoilA Coil = 0
	CoilB Coil = 1
)

// Other returns the opposite coil pin
func (c Coil) Other() Coil {
	return c ^ 1
}

// CoilBackend defines the hardware abstraction for driving the coil.
// Implementations can use GPIO, PIO, or other methods.
type CoilBackend interface {
	// Init configures both drive pins as outputs, driven low
	Init(pinA, pinB GPIOPin) error

	// Pulse drives one pin high for width, then low again.
	// Must block until the pin is low; both pins are never high together.
	Pulse(coil Coil, width time.Duration)

	// Release drives both pins low
	Release()

	// GetName returns backend implementation name
	GetName() string
}

// GPIOCoil drives the coil with direct GPIO writes and a blocking delay
type GPIOCoil struct {
	gpio  GPIODriver
	delay func(time.Duration)
	pins  [2]GPIOPin
}

// NewGPIOCoil creates a GPIO coil backend. delay must block for the given
// duration; targets pass time.Sleep.
func NewGPIOCoil(gpio GPIODriver, delay func(time.Duration)) *GPIOCoil {
	return &GPIOCoil{gpio: gpio, delay: delay}
}

// Init configures both pins as outputs
func (c *GPIOCoil) Init(pinA, pinB GPIOPin) error {
	c.pins = [2]GPIOPin{pinA, pinB}
	for _, pin := range c.pins {
		if err := c.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := c.gpio.SetPin(pin, false); err != nil {
			return err
		}
	}
	DebugPrintln("[COIL] GPIO coil initialized: a=" + utoa(uint32(pinA)) + " b=" + utoa(uint32(pinB)))
	return nil
}

// Pulse drives one pin high for width
func (c *GPIOCoil) Pulse(coil Coil, width time.Duration) {
	pin := c.pins[coil&1]
	if err := c.gpio.SetPin(pin, true); err != nil {
		DebugPrintln("[COIL] pin " + utoa(uint32(pin)) + " set failed: " + err.Error())
		return
	}
	c.delay(width)
	c.setLow(pin)
}

// Release drives both pins low
func (c *GPIOCoil) Release() {
	for _, pin := range c.pins {
		c.setLow(pin)
	}
}

func (c *GPIOCoil) setLow(pin GPIOPin) {
	if err := c.gpio.SetPin(pin, false); err != nil {
		DebugPrintln("[COIL] pin " + utoa(uint32(pin)) + " clear failed: " + err.Error())
	}
}

// GetName returns the backend name
func (c *GPIOCoil) GetName() string {
	return "GPIO"
}
