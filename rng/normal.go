package rng

// randSource64 adapts *Source to math/rand.Source64 so it can back a
// math/rand.Rand without that generator needing to know about fastrand.
type randSource64 struct{ s *Source }

func (r randSource64) Int63() int64   { return int64(r.s.Uint64() >> 1) }
func (r randSource64) Seed(int64)     {} // replication seeding happens via New; reseeding mid-run is never done.
func (r randSource64) Uint64() uint64 { return r.s.Uint64() }

// Normal draws a single standard-normal sample Z~N(0,1) from s. Normal
// is called several times per patient per cycle (SBP update,
// potassium drift, treatment assignment), so it reuses the *rand.Rand
// hoisted onto Source at construction instead of building one per
// call: gonum's distuv.Normal.Rand() allocates a fresh rand.New(Src)
// on every invocation, which would allocate on this hot path.
func (s *Source) Normal() float64 {
	return s.norm.NormFloat64()
}
