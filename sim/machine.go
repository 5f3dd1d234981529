// Package sim runs the clock core against simulated hardware: a compare
// timer counting system-clock cycles, a sleep that jumps to the next
// compare-match, an EEPROM in memory and a coil that takes real (simulated)
// time to pulse. Everything is deterministic and single-threaded.
package sim

import (
	"errors"
	"time"

	"crazyclock/core"
)

// errHalted unwinds a run when the firmware halts, as the hardware never returns
var errHalted = errors.New("halted")

// Machine is the simulated microcontroller. Time is counted in system clock
// cycles of the configured oscillator profile.
type Machine struct {
	profile core.OscillatorProfile

	now       uint64 // cycles since power-on
	nextMatch uint64 // cycle of the next compare-match
	compare   uint16
	armed     bool

	interrupts uint64
	fault      error

	clock  *core.Clock
	EEPROM *EEPROM
	Coil   *Coil
}

// NewMachine creates a machine for the given profile with a blank EEPROM
func NewMachine(profile core.OscillatorProfile) *Machine {
	m := &Machine{
		profile: profile,
		EEPROM:  NewEEPROM(64),
	}
	m.Coil = &Coil{m: m}
	return m
}

// Hardware returns the HAL bundle backed by this machine
func (m *Machine) Hardware() core.Hardware {
	return core.Hardware{
		Timer:   (*timer)(m),
		Sleeper: (*sleeper)(m),
		Coil:    m.Coil,
		NV:      m.EEPROM,
		Fault:   (*fault)(m),
		CoilA:   0,
		CoilB:   1,
	}
}

// Attach connects the clock whose interrupt handler the timer fires
func (m *Machine) Attach(clock *core.Clock) {
	m.clock = clock
}

// PowerOn starts the attached clock and enables the compare interrupt
func (m *Machine) PowerOn() error {
	if m.clock == nil {
		return errors.New("no clock attached")
	}
	if err := m.clock.Start(); err != nil {
		return err
	}
	m.armed = true
	m.schedule()
	return nil
}

// Now returns the simulated time in system clock cycles
func (m *Machine) Now() uint64 {
	return m.now
}

// Elapsed returns the simulated time since power-on
func (m *Machine) Elapsed() time.Duration {
	hz := uint64(m.profile.ClockHz)
	secs := m.now / hz
	rem := m.now % hz
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/hz)
}

// Interrupts returns the number of compare-match interrupts fired
func (m *Machine) Interrupts() uint64 {
	return m.interrupts
}

// Fault returns the error the firmware halted with, if any
func (m *Machine) Fault() error {
	return m.fault
}

// Spend runs the processor for d without sleeping; interrupts that come
// due in the meantime fire on time.
func (m *Machine) Spend(d time.Duration) {
	m.advance(m.cycles(d))
}

func (m *Machine) cycles(d time.Duration) uint64 {
	hz := uint64(m.profile.ClockHz)
	return uint64(d/time.Second)*hz + uint64(d%time.Second)*hz/uint64(time.Second)
}

func (m *Machine) advance(cycles uint64) {
	end := m.now + cycles
	for m.armed && m.nextMatch <= end {
		m.fire()
	}
	m.now = end
}

// schedule arms the next compare-match after the programmed interval
func (m *Machine) schedule() {
	m.nextMatch = m.now + (uint64(m.compare)+1)*uint64(m.profile.TimerPrescale)
}

func (m *Machine) fire() {
	m.now = m.nextMatch
	m.interrupts++
	m.clock.HandleInterrupt()
	m.schedule()
}

type timer Machine

func (t *timer) SetCompare(value uint16) {
	t.compare = value
}

type sleeper Machine

// Sleep idles until the next compare-match and services it
func (s *sleeper) Sleep() {
	m := (*Machine)(s)
	if !m.armed {
		panic("sleep with interrupts disabled would never wake")
	}
	m.fire()
}

type fault Machine

// Halt latches the error and stops the run, like a locked-up chip
func (f *fault) Halt(err error) {
	f.fault = err
	panic(errHalted)
}
