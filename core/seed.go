package core

// Generator modulus, 2^31 - 1
const seedModulus = 0x7fffffff

// Replacement for a degenerate persisted seed
const DefaultSeed = 0x12345678

// SeedStore owns the pseudo-random generator state and mirrors it to
// non-volatile storage so the clock doesn't repeat its previous behavior
// every time the battery is changed.
//
// For a 32 kHz system clock a multiplicative generator is too slow, so this
// is an additive recurrence on shifts. It is not cryptographically secure.
type SeedStore struct {
	seed int32
	nv   NVStore
}

// NewSeedStore creates a seed store backed by nv
func NewSeedStore(nv NVStore) *SeedStore {
	return &SeedStore{nv: nv}
}

// degenerate reports whether the generator would be stuck at seed.
// It can't be all 0 or all 1.
func degenerate(seed int32) bool {
	return seed == 0 || uint32(seed)&seedModulus == seedModulus
}

// Initialize loads the persisted seed, perturbs it once and writes it back,
// so the persisted seed changes on every power cycle.
func (s *SeedStore) Initialize() error {
	seed, err := ReadSeed(s.nv)
	if err != nil {
		return err
	}
	if degenerate(seed) {
		seed = DefaultSeed
	}
	s.seed = seed
	s.Next()
	return s.persist()
}

// Tick persists the seed if it differs from the stored value.
// Don't bother exercising the EEPROM otherwise.
func (s *SeedStore) Tick() error {
	stored, err := ReadSeed(s.nv)
	if err != nil {
		return err
	}
	if stored == s.seed {
		RecordTiming(EvtSeedSkip, Uptime(), uint32(s.seed), 0)
		return nil
	}
	return s.persist()
}

func (s *SeedStore) persist() error {
	if err := WriteSeed(s.nv, s.seed); err != nil {
		return err
	}
	RecordTiming(EvtSeedPersist, Uptime(), uint32(s.seed), 0)
	DebugPrintln("[SEED] persisted " + htoa(uint32(s.seed)))
	return nil
}

// Next advances the generator and returns its new, non-negative value.
// Arithmetic wraps at 32 bits exactly as on the target.
func (s *SeedStore) Next() uint32 {
	seed := s.seed
	seed = (seed >> 16) + int32((uint32(seed)<<15)&seedModulus) - (seed >> 21) - int32((uint32(seed)<<10)&seedModulus)
	if seed < 0 {
		seed += seedModulus
	}
	s.seed = seed
	return uint32(seed)
}

// Uniform returns a draw in [lo, hi] inclusive
func (s *SeedStore) Uniform(lo, hi uint32) uint32 {
	return s.Next()%(hi-lo+1) + lo
}

// Seed returns the current generator state
func (s *SeedStore) Seed() int32 {
	return s.seed
}

// SetSeed replaces the generator state without persisting it
func (s *SeedStore) SetSeed(seed int32) {
	s.seed = seed
}
