package core

// TickGenerator runs in interrupt context on every timer compare-match.
// It owns the divider and trim state; nothing else touches them.
type TickGenerator struct {
	divider Divider
	trim    Trim
	trimmed bool // software trim enabled
	timer   CompareTimer
	backlog *Backlog
	fault   FaultSignal

	compare uint16 // compare value of the interval in progress
}

// NewTickGenerator creates a tick generator feeding the given backlog
func NewTickGenerator(profile OscillatorProfile, timer CompareTimer, backlog *Backlog, fault FaultSignal) *TickGenerator {
	return &TickGenerator{
		divider: NewDivider(profile),
		timer:   timer,
		backlog: backlog,
		fault:   fault,
	}
}

// EnableTrim turns on the software trim with the given correction
func (g *TickGenerator) EnableTrim(trim Trim) {
	g.trim = trim
	g.trimmed = true
}

// Start programs the first interval. Call before enabling interrupts.
func (g *TickGenerator) Start() {
	resetUptime()
	g.compare = g.divider.First()
	g.timer.SetCompare(g.compare)
}

// HandleInterrupt is the compare-match interrupt handler.
// This is the magic for fractional counting: the intervals are not uniform,
// but only by one timer count, which won't be noticeable on a clock face.
func (g *TickGenerator) HandleInterrupt() {
	elapsed := uint32(g.compare) + 1

	next := g.divider.Advance()
	if g.trimmed {
		if offset := g.trim.Elapsed(elapsed); offset != 0 {
			next = g.trim.Apply(next, offset)
		}
	}

	if next != g.compare {
		g.timer.SetCompare(next)
		g.compare = next
	}

	countTick()

	// Every increment here should be matched by a consume in main context
	if err := g.backlog.Produce(); err != nil && g.fault != nil {
		g.fault.Halt(err)
	}
}

// Compare returns the compare value of the interval in progress
func (g *TickGenerator) Compare() uint16 {
	return g.compare
}
