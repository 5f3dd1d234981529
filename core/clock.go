package core

// Hardware bundles the platform implementations the clock runs on
type Hardware struct {
	Timer   CompareTimer
	Sleeper Sleeper
	Coil    CoilBackend
	NV      NVStore
	Fault   FaultSignal // optional

	CoilA GPIOPin
	CoilB GPIOPin
}

// Policy decides when to pulse and when to idle.
// Each Iterate call runs one iteration of the policy's control loop.
type Policy interface {
	Iterate()
}

// Clock ties the tick generator, the accountant, the seed store and the
// pulse driver together.
type Clock struct {
	cfg Config
	hw  Hardware

	backlog    Backlog
	generator  *TickGenerator
	accountant *Accountant
	seeds      *SeedStore
	pulses     *PulseDriver
}

// NewClock validates the configuration and wires up the components
func NewClock(cfg Config, hw Hardware) (*Clock, error) {
	if err := cfg.Profile.Validate(); err != nil {
		return nil, err
	}
	switch {
	case hw.Timer == nil:
		return nil, ErrNoTimer
	case hw.Sleeper == nil:
		return nil, ErrNoSleeper
	case hw.Coil == nil:
		return nil, ErrNoCoilBackend
	case hw.NV == nil:
		return nil, ErrNoNVStore
	}

	c := &Clock{cfg: cfg, hw: hw}

	var fault FaultSignal
	if hw.Fault != nil {
		fault = &releasingFault{coil: hw.Coil, next: hw.Fault}
	}

	c.seeds = NewSeedStore(hw.NV)
	c.generator = NewTickGenerator(cfg.Profile, hw.Timer, &c.backlog, fault)
	c.accountant = NewAccountant(&c.backlog, hw.Sleeper, c.seeds, fault, cfg)
	c.pulses = NewPulseDriver(hw.Coil, c.accountant, cfg.PulseWidth)
	return c, nil
}

// Start initializes the coil, perturbs and persists the seed, loads the
// trim and programs the first timer interval. The caller enables the
// compare interrupt afterwards.
func (c *Clock) Start() error {
	if err := c.hw.Coil.Init(c.hw.CoilA, c.hw.CoilB); err != nil {
		return err
	}

	// Try and perturb the PRNG as best as we can
	if err := c.seeds.Initialize(); err != nil {
		return err
	}

	if c.cfg.Trim {
		offset, err := ReadTrim(c.hw.NV)
		if err != nil {
			return err
		}
		c.generator.EnableTrim(NewTrim(offset, c.cfg.Profile))
		DebugPrintln("[TRIM] offset " + itoa(int(offset)))
	}

	c.generator.Start()
	DebugPrintln("[CLOCK] started, profile " + c.cfg.Profile.Name + ", coil backend " + c.hw.Coil.GetName())
	return nil
}

// HandleInterrupt is the timer compare-match handler
func (c *Clock) HandleInterrupt() {
	c.generator.HandleInterrupt()
}

// Run hands off to the policy forever
func (c *Clock) Run(p Policy) {
	for {
		p.Iterate()
	}
}

// Config returns the configuration the clock was built with
func (c *Clock) Config() Config {
	return c.cfg
}

// Seeds returns the seed store
func (c *Clock) Seeds() *SeedStore {
	return c.seeds
}

// Pulses returns the pulse driver
func (c *Clock) Pulses() *PulseDriver {
	return c.pulses
}

// Accountant returns the backlog accountant
func (c *Clock) Accountant() *Accountant {
	return c.accountant
}

// Generator returns the tick generator
func (c *Clock) Generator() *TickGenerator {
	return c.generator
}

// releasingFault drops both coil pins before handing the error on, so a
// halt can never leave the coil energized.
type releasingFault struct {
	coil CoilBackend
	next FaultSignal
}

func (f *releasingFault) Halt(err error) {
	f.coil.Release()
	f.next.Halt(err)
}
