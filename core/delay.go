package core

import "time"

// DelayCounts converts d into counts of a free-running timer clocked at
// clockHz divided by prescale, truncating.
func DelayCounts(d time.Duration, clockHz, prescale uint32) uint32 {
	hz := uint64(clockHz)
	cycles := uint64(d/time.Second)*hz + uint64(d%time.Second)*hz/uint64(time.Second)
	return uint32(cycles / uint64(prescale))
}

// WaitCounts spins until an 8-bit up-counter has advanced by counts,
// starting from zero. read must be polled at least once per lap.
func WaitCounts(counts uint32, read func() uint8) {
	var last uint8
	for counts > 0 {
		now := read()
		step := uint32(now - last)
		last = now
		if step >= counts {
			return
		}
		counts -= step
	}
}
