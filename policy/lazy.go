package policy

import "crazyclock/core"

const (
	LazyMinBurst   = 1
	LazyMaxBurst   = 30
	LazyIdleFactor = 8
)

// Lazy alternates between ticking really fast and just stopping.
//
// Each iteration draws n in [1,30], pulses n times back to back, then idles
// for n*8 ticks. That is 9n ticks for n pulses, a long-run average of about
// 1.11 pulses per second. SettleTicks adds that many idle ticks after every
// pulse; with SettleTicks = 1 an iteration is 10n ticks and the average is
// exactly 1 Hz.
type Lazy struct {
	rng         Random
	drv         Driver
	SettleTicks uint32

	iterations uint32
	lastBurst  uint32
}

// NewLazy creates a lazy policy
func NewLazy(rng Random, drv Driver) *Lazy {
	return &Lazy{rng: rng, drv: drv}
}

// Iterate runs one burst and its idle period
func (l *Lazy) Iterate() {
	n := l.rng.Uniform(LazyMinBurst, LazyMaxBurst)

	for i := uint32(0); i < n; i++ {
		l.drv.Pulse()
		for j := uint32(0); j < l.SettleTicks; j++ {
			l.drv.Sleep()
		}
	}

	idle := n * LazyIdleFactor
	for i := uint32(0); i < idle; i++ {
		l.drv.Sleep()
	}

	l.iterations++
	l.lastBurst = n
	core.RecordTiming(core.EvtBurst, core.Uptime(), n, idle)
}

// TicksPerIteration returns the ticks an iteration with burst n consumes
func (l *Lazy) TicksPerIteration(n uint32) uint32 {
	return n*(1+l.SettleTicks) + n*LazyIdleFactor
}

// LastBurst returns the pulse count of the most recent iteration
func (l *Lazy) LastBurst() uint32 {
	return l.lastBurst
}

// Iterations returns the number of completed iterations
func (l *Lazy) Iterations() uint32 {
	return l.iterations
}
