package sim

import (
	"time"

	"crazyclock/core"
)

// PulseRecord is one coil pulse as seen on the pins
type PulseRecord struct {
	Coil  core.Coil
	Start uint64 // cycle the pin went high
	End   uint64 // cycle the pin went low
}

// Coil is a simulated coil backend. Pulsing takes simulated time.
type Coil struct {
	m       *Machine
	pins    [2]core.GPIOPin
	pulses  []PulseRecord
	keep    int
	repeats uint32 // consecutive pulses on the same pin
	tracer  PulseWriter

	energized bool // a pin is high right now
	releases  uint32
}

// Init records the drive pins
func (c *Coil) Init(pinA, pinB core.GPIOPin) error {
	c.pins = [2]core.GPIOPin{pinA, pinB}
	return nil
}

// Pulse holds the pin high for width of simulated time
func (c *Coil) Pulse(coil core.Coil, width time.Duration) {
	rec := PulseRecord{Coil: coil, Start: c.m.now}
	if n := len(c.pulses); n > 0 && c.pulses[n-1].Coil == coil {
		c.repeats++
	}
	c.energized = true
	c.m.Spend(width)
	c.energized = false
	rec.End = c.m.now

	if c.tracer != nil {
		c.tracer.Write(rec)
	}

	c.pulses = append(c.pulses, rec)
	if c.keep > 0 && len(c.pulses) > c.keep {
		c.pulses = c.pulses[len(c.pulses)-c.keep:]
	}
}

// Release drops both pins, ending any pulse in progress
func (c *Coil) Release() {
	c.energized = false
	c.releases++
}

// Energized reports whether a coil pin is currently driven
func (c *Coil) Energized() bool {
	return c.energized
}

// Releases returns how many times the coil was released
func (c *Coil) Releases() uint32 {
	return c.releases
}

// GetName returns the backend name
func (c *Coil) GetName() string {
	return "sim"
}

// Pulses returns the retained pulse records
func (c *Coil) Pulses() []PulseRecord {
	return c.pulses
}

// Repeats returns how many times the same pin was pulsed twice in a row
func (c *Coil) Repeats() uint32 {
	return c.repeats
}

// KeepLast bounds the retained pulse history; 0 keeps everything
func (c *Coil) KeepLast(n int) {
	c.keep = n
}

// SetTracer sends every subsequent pulse to w
func (c *Coil) SetTracer(w PulseWriter) {
	c.tracer = w
}
