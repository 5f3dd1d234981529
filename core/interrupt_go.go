//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// irqMask stands in for the global interrupt enable bit so that a host-side
// interrupt source (the simulator, tests) and main-context code can share
// the backlog exactly the way the firmware does.
var irqMask sync.Mutex

// disableInterrupts enters the critical section shared with interrupt context
func disableInterrupts() State {
	irqMask.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	irqMask.Unlock()
}
