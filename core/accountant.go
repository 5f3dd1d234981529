package core

// SeedPersister is the periodic persistence hook run by the accountant
type SeedPersister interface {
	Tick() error
}

// AccountantStats are running counters kept by the accountant
type AccountantStats struct {
	Consumed   uint32 // ticks consumed
	Sleeps     uint32 // consumes that slept for their tick
	CatchUps   uint32 // consumes that found their tick already pending
	MaxBacklog uint8  // largest snapshot seen
}

// Accountant consumes ticks on behalf of the application. Each call to
// ConsumeTick eats exactly one tick, sleeping until it arrives if needed.
type Accountant struct {
	backlog *Backlog
	sleeper Sleeper
	seeds   SeedPersister
	fault   FaultSignal
	lockup  bool

	interval  uint32
	countdown uint32

	stats AccountantStats
}

// NewAccountant creates an accountant. seeds and fault may be nil.
func NewAccountant(backlog *Backlog, sleeper Sleeper, seeds SeedPersister, fault FaultSignal, cfg Config) *Accountant {
	interval := cfg.SeedUpdateInterval
	if interval == 0 {
		interval = SeedUpdateInterval
	}
	return &Accountant{
		backlog:   backlog,
		sleeper:   sleeper,
		seeds:     seeds,
		fault:     fault,
		lockup:    cfg.LockupOnOverrun,
		interval:  interval,
		countdown: interval,
	}
}

// ConsumeTick eats one tick. If no tick is pending the processor sleeps
// until the interrupt produces one. If a tick is already pending the
// caller has fallen behind, so it is repaid immediately without sleeping.
func (a *Accountant) ConsumeTick() {
	a.countdown--
	if a.countdown == 0 {
		if a.seeds != nil {
			if err := a.seeds.Tick(); err != nil {
				RecordTiming(EvtNVError, Uptime(), a.stats.Consumed, 0)
				DebugPrintln("[SEED] persist failed: " + err.Error())
			}
		}
		a.countdown = a.interval
	}

	snapshot := a.backlog.take()
	if snapshot > a.stats.MaxBacklog {
		a.stats.MaxBacklog = snapshot
	}

	if snapshot == 0 {
		a.stats.Sleeps++
		// Other interrupts can wake us too; keep sleeping until our tick lands.
		for {
			a.sleeper.Sleep()
			if a.backlog.take() > 0 {
				break
			}
		}
	} else {
		a.stats.CatchUps++
		RecordTiming(EvtCatchUp, Uptime(), uint32(snapshot), a.stats.Consumed)
		if a.lockup && a.fault != nil {
			a.fault.Halt(ErrBacklogOverrun)
		}
	}

	a.stats.Consumed++
}

// Stats returns a copy of the running counters
func (a *Accountant) Stats() AccountantStats {
	return a.stats
}

// Backlog returns the backlog this accountant drains
func (a *Accountant) Backlog() *Backlog {
	return a.backlog
}
