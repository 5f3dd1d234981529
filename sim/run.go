package sim

import (
	"time"

	"crazyclock/core"
)

// Report summarizes a simulated run
type Report struct {
	Elapsed    time.Duration
	Interrupts uint64
	Iterations uint32
	Pulses     uint32
	Consumed   uint32
	Sleeps     uint32
	CatchUps   uint32
	MaxBacklog uint8
	Repeats    uint32 // same coil pin pulsed twice in a row
	NVWrites   uint32
	Seed       int32
	Fault      error
}

// PulseRateMilliHz is pulses per second of consumed ticks, in mHz
func (r Report) PulseRateMilliHz() uint64 {
	if r.Consumed == 0 {
		return 0
	}
	return uint64(r.Pulses) * 1000 * core.TickHz / uint64(r.Consumed)
}

// Run iterates the policy until the machine has run for d, finishing the
// iteration in progress. A firmware halt ends the run early.
func Run(m *Machine, p core.Policy, d time.Duration) (r Report) {
	end := m.cycles(d)

	defer func() {
		if rec := recover(); rec != nil {
			if rec != errHalted {
				panic(rec)
			}
		}
		r = m.report(r.Iterations)
	}()

	for m.now < end {
		p.Iterate()
		r.Iterations++
	}
	return r
}

func (m *Machine) report(iterations uint32) Report {
	stats := m.clock.Accountant().Stats()
	return Report{
		Elapsed:    m.Elapsed(),
		Interrupts: m.interrupts,
		Iterations: iterations,
		Pulses:     m.clock.Pulses().Pulses(),
		Consumed:   stats.Consumed,
		Sleeps:     stats.Sleeps,
		CatchUps:   stats.CatchUps,
		MaxBacklog: stats.MaxBacklog,
		Repeats:    m.Coil.Repeats(),
		NVWrites:   m.EEPROM.Writes(),
		Seed:       m.clock.Seeds().Seed(),
		Fault:      m.fault,
	}
}
