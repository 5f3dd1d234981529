// Package policy holds the scheduling policies that sit on top of the clock
// core. A policy turns random draws into a pulse cadence; the core keeps the
// time.
package policy

// Random supplies draws for a policy
type Random interface {
	// Uniform returns a draw in [lo, hi] inclusive
	Uniform(lo, hi uint32) uint32
}

// Driver is the clock as seen by a policy. Every call eats exactly one tick.
type Driver interface {
	// Pulse advances the movement once and eats the rest of the tick
	Pulse()

	// Sleep eats one tick without pulsing
	Sleep()
}
