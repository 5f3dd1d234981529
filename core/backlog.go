package core

import "errors"

var (
	// ErrBacklogOverflow means the interrupt produced ticks faster than the
	// counter can hold: the application has stopped consuming them.
	ErrBacklogOverflow = errors.New("tick backlog overflow")

	// ErrBacklogOverrun means a tick was already pending when the application
	// came to consume it, so the work between consumes took over a tick period.
	ErrBacklogOverrun = errors.New("tick backlog overrun")
)

// BacklogMax is the largest backlog the counter can represent
const BacklogMax = 255

// Backlog counts ticks produced by the interrupt and not yet consumed.
// It is the only datum shared between interrupt and main context; every
// access is a single critical section.
type Backlog struct {
	count uint8
}

// Produce adds one tick. Called from interrupt context.
func (b *Backlog) Produce() error {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if b.count == BacklogMax {
		return ErrBacklogOverflow
	}
	b.count++
	return nil
}

// take atomically snapshots the backlog and, if a tick is pending,
// consumes it. It never decrements below zero.
func (b *Backlog) take() (snapshot uint8) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	snapshot = b.count
	if snapshot > 0 {
		b.count--
	}
	return snapshot
}

// Pending returns the current backlog
func (b *Backlog) Pending() uint8 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return b.count
}
