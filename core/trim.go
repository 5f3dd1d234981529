package core

// Trim applies a manufacturing-time frequency correction to the divider.
//
// The offset is in tenths of a ppm: once every TrimQuantum timer counts the
// offset is added to exactly one compare value, never split across several.
type Trim struct {
	offset      int16
	accumulated uint32
}

// NewTrim returns a trim for the given offset. Offsets that would push a
// compare value to zero or below are ignored.
func NewTrim(offset int16, profile OscillatorProfile) Trim {
	limit := int32(profile.BasicCycle)
	if int32(offset) >= limit || int32(offset) <= -limit {
		DebugPrintln("[TRIM] offset out of range, ignored: " + itoa(int(offset)))
		offset = 0
	}
	return Trim{offset: offset}
}

// Offset returns the correction applied once per quantum
func (t *Trim) Offset() int16 {
	return t.offset
}

// Elapsed accounts for counts timer counts and returns the offset to add to
// the next compare value, or 0 if no correction is due.
func (t *Trim) Elapsed(counts uint32) int16 {
	t.accumulated += counts
	if t.accumulated < TrimQuantum {
		return 0
	}
	t.accumulated -= TrimQuantum
	return t.offset
}

// Apply adds a trim offset to a compare value
func (t *Trim) Apply(compare uint16, offset int16) uint16 {
	return uint16(int32(compare) + int32(offset))
}
