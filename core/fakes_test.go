package core

import (
	"errors"
	"io"
	"time"
)

// fakeTimer records every compare value written
type fakeTimer struct {
	writes []uint16
}

func (t *fakeTimer) SetCompare(value uint16) {
	t.writes = append(t.writes, value)
}

// memNV is an in-memory EEPROM that counts writes
type memNV struct {
	data    [8]byte
	writes  int
	failErr error
}

func (m *memNV) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	return copy(p, m.data[off:]), nil
}

func (m *memNV) WriteAt(p []byte, off int64) (int, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	if off+int64(len(p)) > int64(len(m.data)) {
		return 0, errors.New("write past end")
	}
	m.writes++
	return copy(m.data[off:], p), nil
}

// tickSleeper produces a tick on the backlog every time the processor sleeps,
// optionally waking spuriously first.
type tickSleeper struct {
	backlog  *Backlog
	onSleep  func()
	spurious int // wake-ups without a tick before the real one
	calls    int
}

func (s *tickSleeper) Sleep() {
	s.calls++
	if s.spurious > 0 {
		s.spurious--
		return
	}
	if s.onSleep != nil {
		s.onSleep()
		return
	}
	s.backlog.Produce()
}

// fakeFault records fatal errors instead of halting
type fakeFault struct {
	errs []error
}

func (f *fakeFault) Halt(err error) {
	f.errs = append(f.errs, err)
}

// countingConsumer counts consumed ticks
type countingConsumer struct {
	consumed int
}

func (c *countingConsumer) ConsumeTick() {
	c.consumed++
}

// recordingCoil records the order of pulsed pins
type recordingCoil struct {
	pins   [2]GPIOPin
	pulses   []Coil
	widths   []time.Duration
	releases int
}

func (r *recordingCoil) Init(pinA, pinB GPIOPin) error {
	r.pins = [2]GPIOPin{pinA, pinB}
	return nil
}

func (r *recordingCoil) Pulse(coil Coil, width time.Duration) {
	r.pulses = append(r.pulses, coil)
	r.widths = append(r.widths, width)
}

func (r *recordingCoil) Release() {
	r.releases++
}

func (r *recordingCoil) GetName() string {
	return "recording"
}

// fakeGPIO tracks pin levels and the most pins ever high at once
type fakeGPIO struct {
	levels  map[GPIOPin]bool
	maxHigh int
}

func newFakeGPIO() *fakeGPIO {
	return &fakeGPIO{levels: make(map[GPIOPin]bool)}
}

func (g *fakeGPIO) ConfigureOutput(pin GPIOPin) error {
	g.levels[pin] = false
	return nil
}

func (g *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	g.levels[pin] = value
	high := 0
	for _, v := range g.levels {
		if v {
			high++
		}
	}
	if high > g.maxHigh {
		g.maxHigh = high
	}
	return nil
}

// failingGPIO rejects every pin write
type failingGPIO struct {
	err   error
	calls int
}

func (g *failingGPIO) ConfigureOutput(pin GPIOPin) error {
	return nil
}

func (g *failingGPIO) SetPin(pin GPIOPin, value bool) error {
	g.calls++
	return g.err
}
