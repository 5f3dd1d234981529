package core

import "time"

// TickConsumer eats one tick of the 10 Hz clock
type TickConsumer interface {
	ConsumeTick()
}

// PulseDriver advances the movement by one step per call, alternating the
// coil polarity on every pulse.
type PulseDriver struct {
	backend  CoilBackend
	ticks    TickConsumer
	width    time.Duration
	lastCoil Coil

	pulses uint32
}

// NewPulseDriver creates a pulse driver. The first pulse is on coil B.
func NewPulseDriver(backend CoilBackend, ticks TickConsumer, width time.Duration) *PulseDriver {
	if width == 0 {
		width = PulseWidth
	}
	return &PulseDriver{
		backend:  backend,
		ticks:    ticks,
		width:    width,
		lastCoil: CoilA,
	}
}

// Pulse ticks the clock once, then eats the rest of this tick
func (p *PulseDriver) Pulse() {
	coil := p.lastCoil.Other()
	p.backend.Pulse(coil, p.width)
	p.lastCoil = coil
	p.pulses++
	RecordTiming(EvtPulse, Uptime(), uint32(coil), p.pulses)

	p.ticks.ConsumeTick()
}

// Sleep eats one tick without pulsing
func (p *PulseDriver) Sleep() {
	p.ticks.ConsumeTick()
}

// LastCoil returns the coil pin driven by the most recent pulse
func (p *PulseDriver) LastCoil() Coil {
	return p.lastCoil
}

// Pulses returns the number of pulses issued
func (p *PulseDriver) Pulses() uint32 {
	return p.pulses
}
