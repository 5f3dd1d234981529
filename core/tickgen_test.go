package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intervals runs n interrupts and returns the compare value of each interval,
// starting with the one programmed by Start.
func intervals(g *TickGenerator, n int) []uint16 {
	out := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Compare())
		g.HandleInterrupt()
	}
	return out
}

func TestDividerWindowIsExact(t *testing.T) {
	timer := &fakeTimer{}
	var backlog Backlog
	g := NewTickGenerator(Profile4MHz, timer, &backlog, nil)
	g.Start()

	for window := 0; window < 3; window++ {
		values := intervals(g, 64)

		var counts uint32
		for i, v := range values {
			if i < 53 {
				assert.Equal(t, uint16(48), v, "interval %d", i+1)
			} else {
				assert.Equal(t, uint16(47), v, "interval %d", i+1)
			}
			counts += uint32(v) + 1
		}
		assert.Equal(t, uint32(3125), counts)
		assert.Equal(t, uint8(0), g.divider.Position())

		// Drain the backlog so it doesn't overflow across windows
		for backlog.take() > 0 {
		}
	}

	// The register is only written when the value changes
	assert.Equal(t, []uint16{48, 47, 48, 47, 48, 47, 48}, timer.writes)
}

func TestDivider32kHzWindow(t *testing.T) {
	var backlog Backlog
	g := NewTickGenerator(Profile32kHz, &fakeTimer{}, &backlog, nil)
	g.Start()

	values := intervals(g, 10)
	assert.Equal(t, []uint16{51, 50, 50, 50, 50, 51, 50, 50, 50, 50}, values)
}

func TestTickGeneratorProducesOneTickPerInterrupt(t *testing.T) {
	var backlog Backlog
	g := NewTickGenerator(Profile4MHz, &fakeTimer{}, &backlog, nil)
	g.Start()

	for i := 1; i <= 5; i++ {
		g.HandleInterrupt()
		assert.Equal(t, uint8(i), backlog.Pending())
	}
}

func TestTickGeneratorHaltsOnOverflow(t *testing.T) {
	var backlog Backlog
	fault := &fakeFault{}
	g := NewTickGenerator(Profile32kHz, &fakeTimer{}, &backlog, fault)
	g.Start()

	for i := 0; i < BacklogMax; i++ {
		g.HandleInterrupt()
	}
	require.Empty(t, fault.errs)

	g.HandleInterrupt()
	require.Len(t, fault.errs, 1)
	assert.ErrorIs(t, fault.errs[0], ErrBacklogOverflow)
	assert.Equal(t, uint8(BacklogMax), backlog.Pending())
}

func TestTrimElapsed(t *testing.T) {
	trim := NewTrim(5, Profile4MHz)
	assert.Equal(t, int16(5), trim.Offset())

	assert.Equal(t, int16(0), trim.Elapsed(TrimQuantum-1))
	assert.Equal(t, int16(5), trim.Elapsed(1))
	assert.Equal(t, int16(0), trim.Elapsed(1))
	assert.Equal(t, int16(0), trim.Elapsed(TrimQuantum-2))
	assert.Equal(t, int16(5), trim.Elapsed(1))
}

func TestTrimRejectsOutOfRangeOffset(t *testing.T) {
	tooHigh := NewTrim(47, Profile4MHz)
	tooLow := NewTrim(-47, Profile4MHz)
	maxHigh := NewTrim(46, Profile4MHz)
	maxLow := NewTrim(-46, Profile4MHz)
	assert.Equal(t, int16(0), tooHigh.Offset())
	assert.Equal(t, int16(0), tooLow.Offset())
	assert.Equal(t, int16(46), maxHigh.Offset())
	assert.Equal(t, int16(-46), maxLow.Offset())
}

func TestTrimAppliedToOneIntervalPerQuantum(t *testing.T) {
	const offset = 3
	var backlog Backlog
	g := NewTickGenerator(Profile4MHz, &fakeTimer{}, &backlog, nil)
	g.EnableTrim(NewTrim(offset, Profile4MHz))
	g.Start()

	nominal := NewDivider(Profile4MHz)
	expected := nominal.First()

	var counts uint64
	var corrected []int
	for i := 0; i < 450000; i++ {
		actual := g.Compare()
		switch actual {
		case expected:
		case expected + offset:
			corrected = append(corrected, i)
		default:
			t.Fatalf("interval %d: compare %d, nominal %d", i, actual, expected)
		}
		counts += uint64(actual) + 1

		g.HandleInterrupt()
		backlog.take()
		expected = nominal.Advance()
	}

	// About 22M counts elapsed: two corrections, each a single interval
	assert.Len(t, corrected, int(counts/TrimQuantum))
	assert.Len(t, corrected, 2)
	assert.NotEqual(t, corrected[0]+1, corrected[1])
}
