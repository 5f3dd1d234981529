package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"crazyclock/core"
	"crazyclock/policy"
)

// Scenario describes one simulated run
type Scenario struct {
	Profile string `yaml:"profile"` // oscillator profile name
	Policy  string `yaml:"policy"`  // lazy or steady
	Seconds uint32 `yaml:"seconds"` // simulated run length

	SettleTicks uint32 `yaml:"settle_ticks"` // lazy policy only

	// Seed is written to the EEPROM before power-on; nil leaves it erased
	Seed *int32 `yaml:"seed"`

	TrimEnabled bool  `yaml:"trim_enabled"`
	Trim        int16 `yaml:"trim"` // tenths of a ppm

	Lockup             bool          `yaml:"lockup"`
	SeedUpdateInterval uint32        `yaml:"seed_update_interval"` // ticks
	Work               time.Duration `yaml:"work"`                 // processor time spent per policy iteration
}

// DefaultScenario returns an hour of the lazy clock on the 4 MHz profile
func DefaultScenario() *Scenario {
	return &Scenario{
		Profile:            core.Profile4MHz.Name,
		Policy:             "lazy",
		Seconds:            3600,
		SeedUpdateInterval: core.SeedUpdateInterval,
	}
}

// LoadScenario loads a scenario from a YAML file. If the file doesn't exist
// or fields are missing, default values are used.
func LoadScenario(filename string) (*Scenario, error) {
	s := DefaultScenario()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the scenario as YAML
func (s *Scenario) Save(filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// Validate checks the scenario names a known profile and policy
func (s *Scenario) Validate() error {
	if _, ok := core.Profiles[s.Profile]; !ok {
		return fmt.Errorf("unknown profile %q", s.Profile)
	}
	switch s.Policy {
	case "lazy", "steady":
	default:
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	if s.Seconds == 0 {
		return fmt.Errorf("seconds must be positive")
	}
	return nil
}

// Config resolves the firmware configuration for the scenario
func (s *Scenario) Config() (core.Config, error) {
	if err := s.Validate(); err != nil {
		return core.Config{}, err
	}
	cfg := core.DefaultConfig(core.Profiles[s.Profile])
	cfg.Trim = s.TrimEnabled
	cfg.LockupOnOverrun = s.Lockup
	if s.SeedUpdateInterval != 0 {
		cfg.SeedUpdateInterval = s.SeedUpdateInterval
	}
	return cfg, nil
}

// Build creates a powered-on machine and the scenario's policy
func (s *Scenario) Build() (*Machine, core.Policy, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, nil, err
	}

	m := NewMachine(cfg.Profile)
	if s.Seed != nil {
		if err := core.WriteSeed(m.EEPROM, *s.Seed); err != nil {
			return nil, nil, err
		}
	}
	if s.TrimEnabled {
		if err := core.WriteTrim(m.EEPROM, s.Trim); err != nil {
			return nil, nil, err
		}
	}

	clock, err := core.NewClock(cfg, m.Hardware())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build clock: %w", err)
	}
	m.Attach(clock)
	if err := m.PowerOn(); err != nil {
		return nil, nil, fmt.Errorf("failed to power on: %w", err)
	}

	var p core.Policy
	switch s.Policy {
	case "steady":
		p = policy.NewSteady(clock.Pulses())
	default:
		lazy := policy.NewLazy(clock.Seeds(), clock.Pulses())
		lazy.SettleTicks = s.SettleTicks
		p = lazy
	}

	if s.Work > 0 {
		p = &busyPolicy{inner: p, m: m, work: s.Work}
	}
	return m, p, nil
}

// busyPolicy spends processor time before every iteration, standing in for
// the application work a policy does between ticks.
type busyPolicy struct {
	inner core.Policy
	m     *Machine
	work  time.Duration
}

func (b *busyPolicy) Iterate() {
	b.m.Spend(b.work)
	b.inner.Iterate()
}
