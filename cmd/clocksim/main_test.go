package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDividerCommand(t *testing.T) {
	out, err := execute(t, "divider", "4mhz")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 65)
	assert.Contains(t, lines[0], "compare=48")
	assert.Contains(t, lines[52], "compare=48")
	assert.Contains(t, lines[53], "compare=47")
	assert.Equal(t, "total 3125 timer counts per 64 ticks (31250 system clocks per second)", lines[64])
}

func TestDividerCommandUnknownProfile(t *testing.T) {
	_, err := execute(t, "divider", "8mhz")
	assert.ErrorContains(t, err, "unknown profile")
}

func TestSequenceCommand(t *testing.T) {
	out, err := execute(t, "sequence", "0x12345678", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "1507996066\n269143827\n1011696522\n", out)
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--policy", "steady", "--seconds", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "pulse rate    1.000 Hz")
	assert.Contains(t, out, "coil repeats  0")
}

// Flags persist on the package-level command, so this runs last.
func TestRunCommandTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulses.csv")
	out, err := execute(t, "run", "--policy", "steady", "--seconds", "5", "--trace-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Recording pulses in "+path)

	m := regexp.MustCompile(`pulses\s+(\d+)`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	pulses, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	require.Greater(t, pulses, 0)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, rows, pulses+1)
	assert.Equal(t, "Coil, Start, End", rows[0])
	for i, row := range rows[1:] {
		want := "B, "
		if i%2 == 1 {
			want = "A, "
		}
		assert.True(t, strings.HasPrefix(row, want), "row %d: %s", i, row)
	}
}
