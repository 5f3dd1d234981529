package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crazyclock/core"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	assert.Equal(t, "4mhz", s.Profile)
	assert.Equal(t, "lazy", s.Policy)
	assert.Equal(t, uint32(3600), s.Seconds)
	assert.Nil(t, s.Seed)
	require.NoError(t, s.Validate())
}

func TestLoadScenario_FileNotExists(t *testing.T) {
	s, err := LoadScenario(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultScenario(), s)
}

func TestLoadScenario_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `
profile: 32khz
policy: lazy
seconds: 600
settle_ticks: 1
seed: 42
trim_enabled: true
trim: -15
lockup: true
work: 20ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "32khz", s.Profile)
	assert.Equal(t, uint32(600), s.Seconds)
	assert.Equal(t, uint32(1), s.SettleTicks)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int32(42), *s.Seed)
	assert.True(t, s.TrimEnabled)
	assert.Equal(t, int16(-15), s.Trim)
	assert.True(t, s.Lockup)
	assert.Equal(t, 20*time.Millisecond, s.Work)
	// Missing fields keep their defaults
	assert.Equal(t, uint32(core.SeedUpdateInterval), s.SeedUpdateInterval)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, core.Profile32kHz, cfg.Profile)
	assert.True(t, cfg.Trim)
	assert.True(t, cfg.LockupOnOverrun)
}

func TestLoadScenario_Invalid(t *testing.T) {
	dir := t.TempDir()

	badProfile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(badProfile, []byte("profile: 8mhz\n"), 0o644))
	_, err := LoadScenario(badProfile)
	assert.ErrorContains(t, err, "unknown profile")

	badPolicy := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(badPolicy, []byte("policy: frantic\n"), 0o644))
	_, err = LoadScenario(badPolicy)
	assert.ErrorContains(t, err, "unknown policy")

	badYAML := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("seconds: [1, 2\n"), 0o644))
	_, err = LoadScenario(badYAML)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestScenarioSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	seed := int32(7)
	s := DefaultScenario()
	s.Seed = &seed
	s.Work = 5 * time.Millisecond

	require.NoError(t, s.Save(path))
	loaded, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestBuildWritesTrim(t *testing.T) {
	s := DefaultScenario()
	s.TrimEnabled = true
	s.Trim = 12
	m, _, err := s.Build()
	require.NoError(t, err)

	trim, err := core.ReadTrim(m.EEPROM)
	require.NoError(t, err)
	assert.Equal(t, int16(12), trim)
}

func TestEEPROMStartsErased(t *testing.T) {
	e := NewEEPROM(8)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, e.Bytes())

	_, err := e.WriteAt([]byte{1, 2}, 7)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, uint32(0), e.Writes())
}

func TestSettledScenarioRunsAtOneHertz(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "settled_32khz.yaml"))
	require.NoError(t, err)

	m, p := build(t, s)
	r := Run(m, p, time.Duration(s.Seconds)*time.Second)

	require.NoError(t, r.Fault)
	assert.Equal(t, uint64(1000), r.PulseRateMilliHz())
	assert.Equal(t, uint32(0), r.CatchUps)
}
