package core

// Divider is the fractional (Bresenham-style) clock divider.
// It alternates between two compare values so that the average
// interval is an exact integer ratio of the timer clock.
type Divider struct {
	profile  OscillatorProfile
	position uint8
}

// NewDivider creates a divider positioned at the start of a window
func NewDivider(profile OscillatorProfile) Divider {
	return Divider{profile: profile}
}

// First returns the compare value for the interval before the first interrupt
func (d *Divider) First() uint16 {
	return d.profile.BasicCycle + 1
}

// Advance records one compare-match and returns the nominal compare value
// for the next interval.
func (d *Divider) Advance() uint16 {
	d.position++
	if d.position >= d.profile.Cycles {
		d.position = 0
	}
	if d.position < d.profile.LongCycles {
		return d.profile.BasicCycle + 1
	}
	return d.profile.BasicCycle
}

// Position returns the number of interrupts seen in the current window
func (d *Divider) Position() uint8 {
	return d.position
}
