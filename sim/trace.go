package sim

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// PulseWriter receives every pulse the simulated coil produces
type PulseWriter interface {
	Write(rec PulseRecord)
}

// CSVTraceWriter stores pulse records in a CSV file, one row per pulse,
// with times in seconds since power-on.
type CSVTraceWriter struct {
	path    string
	clockHz uint32
	file    *os.File

	pulses     []PulseRecord
	bufferSize int
}

// NewCSVTraceWriter creates a writer for the machine's clock rate. An empty
// path picks a unique file name.
func NewCSVTraceWriter(path string, m *Machine) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		clockHz:    m.profile.ClockHz,
		bufferSize: 1000,
	}
}

// Init creates the trace file. An existing file is never overwritten. The
// buffer is flushed and the file closed at exit.
func (t *CSVTraceWriter) Init() error {
	if t.path == "" {
		t.path = "clocksim_trace_" + xid.New().String() + ".csv"
	}

	if _, err := os.Stat(t.path); err == nil {
		return fmt.Errorf("file %s already exists", t.path)
	}

	file, err := os.Create(t.path)
	if err != nil {
		return err
	}
	t.file = file

	fmt.Fprintf(file, "Coil, Start, End\n")

	atexit.Register(func() {
		t.Flush()
		if err := t.file.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	return nil
}

// Path returns the trace file name
func (t *CSVTraceWriter) Path() string {
	return t.path
}

// Write buffers one pulse
func (t *CSVTraceWriter) Write(rec PulseRecord) {
	t.pulses = append(t.pulses, rec)
	if len(t.pulses) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered pulses to the file
func (t *CSVTraceWriter) Flush() {
	hz := float64(t.clockHz)
	for _, p := range t.pulses {
		fmt.Fprintf(t.file, "%c, %.6f, %.6f\n",
			'A'+rune(p.Coil),
			float64(p.Start)/hz,
			float64(p.End)/hz,
		)
	}
	t.pulses = nil
}
