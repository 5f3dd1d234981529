package core

import (
	"errors"
	"time"
)

// Tick rate of the logical clock, independent of the oscillator
const TickHz = 10

const (
	// SeedUpdateInterval is one day in tenths of a second
	SeedUpdateInterval = 864000

	// PulseWidth is how long a coil pin is held high for one step
	PulseWidth = 35 * time.Millisecond

	// TrimQuantum is the number of timer counts per trim correction.
	// The trim value is in tenths of a ppm, so one correction per ten million counts.
	TrimQuantum = 10000000
)

var (
	ErrInvalidProfile = errors.New("oscillator profile does not divide to 10 Hz")
	ErrNoTimer        = errors.New("no compare timer configured")
	ErrNoSleeper      = errors.New("no sleeper configured")
	ErrNoCoilBackend  = errors.New("no coil backend configured")
	ErrNoNVStore      = errors.New("no non-volatile store configured")
)

// OscillatorProfile describes how the system clock is divided down to TickHz.
//
// The compare register is 0-based and inclusive, so a compare value of c
// produces an interval of c+1 timer counts. Within every window of Cycles
// interrupts, the first LongCycles intervals are BasicCycle+2 counts long
// and the rest BasicCycle+1.
type OscillatorProfile struct {
	Name          string
	ClockHz       uint32 // system clock after the CPU prescaler
	TimerPrescale uint32 // system clocks per timer count
	Cycles        uint8  // interrupts per divider window
	LongCycles    uint8  // long intervals per window
	BasicCycle    uint16 // compare value of a short interval
}

// 4,000,000 divided by 128 is 31,250.
// 31,250 divided by (64 * 10) is a divisor of 48 53/64, which is 49*53 + 48*11.
var Profile4MHz = OscillatorProfile{
	Name:          "4mhz",
	ClockHz:       31250,
	TimerPrescale: 64,
	Cycles:        64,
	LongCycles:    53,
	BasicCycle:    48 - 1,
}

// 32,768 divided by (64 * 10) yields a divisor of 51 1/5, which is 52 + 51*4.
var Profile32kHz = OscillatorProfile{
	Name:          "32khz",
	ClockHz:       32768,
	TimerPrescale: 64,
	Cycles:        5,
	LongCycles:    1,
	BasicCycle:    51 - 1,
}

// Profiles lists the built-in oscillator profiles by name
var Profiles = map[string]OscillatorProfile{
	Profile4MHz.Name:  Profile4MHz,
	Profile32kHz.Name: Profile32kHz,
}

// CountsPerWindow returns the timer counts elapsed over one divider window
func (p OscillatorProfile) CountsPerWindow() uint32 {
	long := uint32(p.LongCycles) * (uint32(p.BasicCycle) + 2)
	short := uint32(p.Cycles-p.LongCycles) * (uint32(p.BasicCycle) + 1)
	return long + short
}

// Validate checks that the divider averages exactly TickHz
func (p OscillatorProfile) Validate() error {
	if p.Cycles == 0 || p.LongCycles > p.Cycles || p.BasicCycle == 0 || p.TimerPrescale == 0 {
		return ErrInvalidProfile
	}
	if uint64(p.CountsPerWindow())*uint64(p.TimerPrescale)*TickHz != uint64(p.ClockHz)*uint64(p.Cycles) {
		return ErrInvalidProfile
	}
	return nil
}

// Config is the build-time configuration of the clock, resolved once in main
type Config struct {
	Profile OscillatorProfile

	// Trim enables the software frequency trim and its non-volatile slot
	Trim bool

	// LockupOnOverrun halts with the debug pin raised as soon as a tick
	// is found already pending when the application comes to consume it
	LockupOnOverrun bool

	PulseWidth         time.Duration
	SeedUpdateInterval uint32
}

// DefaultConfig returns the standard configuration for the given profile
func DefaultConfig(profile OscillatorProfile) Config {
	return Config{
		Profile:            profile,
		PulseWidth:         PulseWidth,
		SeedUpdateInterval: SeedUpdateInterval,
	}
}
