package core

// CompareTimer is the hardware timer running in clear-on-compare mode.
// The compare value is 0-based and inclusive.
type CompareTimer interface {
	// SetCompare programs the compare value used for the next interval
	SetCompare(value uint16)
}

// Sleeper puts the processor into low-power sleep until the next interrupt
type Sleeper interface {
	Sleep()
}

// FaultSignal makes a fatal condition externally observable.
// On hardware Halt never returns.
type FaultSignal interface {
	Halt(err error)
}
