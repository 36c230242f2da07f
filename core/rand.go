package core

// Rand is the small linear-congruential generator the reaction game uses
// for its pre-roll delay. Not remotely cryptographic.
type Rand struct {
	seed uint32
}

// NewRand returns a generator with the given seed. A zero seed falls back
// to the fixed constant 12345, which discards what little entropy there
// was; this happens when the counter is sampled immediately after reset.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = 12345
	}
	return &Rand{seed: seed}
}

// NewClockRand seeds a generator from the live microsecond counter.
func NewClockRand() *Rand {
	return NewRand(MustClock().Micros())
}

// Range returns a value in [min, max].
func (r *Rand) Range(min, max uint32) uint32 {
	r.seed = r.seed*1103515245 + 12345
	return min + r.seed%(max-min+1)
}
