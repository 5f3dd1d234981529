package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimingRingWraps(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	for i := uint32(1); i <= TimingRingSize+3; i++ {
		RecordTiming(EvtPulse, i, i%2, 0)
	}

	events := TimingEvents()
	assert.Len(t, events, TimingRingSize)
	assert.Equal(t, uint32(4), events[0].Tick)
	assert.Equal(t, uint32(TimingRingSize+3), events[len(events)-1].Tick)
}

func TestDumpTimingRing(t *testing.T) {
	ClearTimingRing()
	defer ClearTimingRing()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	RecordTiming(EvtCatchUp, 7, 2, 0)
	RecordTiming(EvtSeedPersist, 0, 1507996066, 0)
	DumpTimingRing()

	assert.Equal(t, []string{
		"[TIMING] === Timing Ring Dump ===",
		"[TIMING] CATCH_UP! tick=7 v1=2 v2=0",
		"[TIMING] SEED_WRITE tick=0 v1=1507996066 v2=0",
		"[TIMING] === End Dump ===",
	}, lines)
}

func TestDebugPrintlnGated(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	SetDebugEnabled(true)
	defer SetDebugEnabled(false)
	assert.True(t, IsDebugEnabled())
	DebugPrintln("shown")

	assert.Equal(t, []string{"shown"}, lines)
}
