package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacklogTakeNeverUnderflows(t *testing.T) {
	var b Backlog

	assert.Equal(t, uint8(0), b.take())
	assert.Equal(t, uint8(0), b.Pending())

	require.NoError(t, b.Produce())
	require.NoError(t, b.Produce())
	assert.Equal(t, uint8(2), b.take())
	assert.Equal(t, uint8(1), b.take())
	assert.Equal(t, uint8(0), b.take())
	assert.Equal(t, uint8(0), b.Pending())
}

func TestBacklogOverflow(t *testing.T) {
	var b Backlog
	for i := 0; i < BacklogMax; i++ {
		require.NoError(t, b.Produce())
	}
	assert.ErrorIs(t, b.Produce(), ErrBacklogOverflow)
	assert.Equal(t, uint8(BacklogMax), b.Pending())
}

func TestBacklogRandomInterleaving(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var b Backlog
	sleeper := &tickSleeper{backlog: &b}
	a := NewAccountant(&b, sleeper, nil, nil, DefaultConfig(Profile32kHz))

	produced, consumed := 0, 0
	for i := 0; i < 10000; i++ {
		if rng.Intn(2) == 0 && b.Pending() < BacklogMax {
			require.NoError(t, b.Produce())
			produced++
			continue
		}

		pending := b.Pending()
		sleepsBefore := a.Stats().Sleeps
		a.ConsumeTick()
		consumed++

		if pending == 0 {
			// The sleeper produced the tick we ate
			produced++
			assert.Equal(t, sleepsBefore+1, a.Stats().Sleeps)
			assert.Equal(t, uint8(0), b.Pending())
		} else {
			assert.Equal(t, sleepsBefore, a.Stats().Sleeps)
			assert.Equal(t, pending-1, b.Pending())
		}
		assert.Equal(t, produced-consumed, int(b.Pending()))
	}
}
