package policy

import "crazyclock/core"

// Steady is an ordinary clock: one pulse at the top of every second
type Steady struct {
	drv Driver
}

// NewSteady creates a steady policy
func NewSteady(drv Driver) *Steady {
	return &Steady{drv: drv}
}

// Iterate runs one second
func (s *Steady) Iterate() {
	s.drv.Pulse()
	for i := 1; i < core.TickHz; i++ {
		s.drv.Sleep()
	}
}
