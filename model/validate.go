package model

import "hmse/simerr"

// ValidateConfig checks the contract-violation rules from §7.1 that
// apply to configuration: negative horizon, discount rate outside
// [0,1). Mirrors the teacher's filter-rebuild-and-recount idiom in
// shape (a single pass producing a decision), generalized from a bool
// predicate to a structured error.
func ValidateConfig(c *Config) *simerr.Error {
	if c.TimeHorizonMonths < 0 {
		return simerr.Contractf("time_horizon_months", "must be >= 0, got %d", c.TimeHorizonMonths)
	}
	if c.CycleLengthMonths <= 0 {
		return simerr.Contractf("cycle_length_months", "must be > 0, got %f", c.CycleLengthMonths)
	}
	if c.DiscountRate < 0 || c.DiscountRate >= 1 {
		return simerr.Contractf("discount_rate", "must be in [0,1), got %f", c.DiscountRate)
	}
	return nil
}

// ValidateStore checks the column-length and range invariants from §3
// that the bridge must enforce before a Store is handed to the
// kernel: the age, sex, eGFR, serum K, current SBP and true-mean SBP
// columns have length N, potassium/SBP ranges, eGFR floor.
// This does not check every column (most accept any real value); it
// checks the columns with an explicit invariant in §3.
func ValidateStore(s *Store) *simerr.Error {
	n := s.N
	if len(s.Age) != n || len(s.Sex) != n || len(s.EGFR) != n || len(s.SerumK) != n ||
		len(s.CurrentSBP) != n || len(s.TrueMeanSBP) != n {
		return simerr.Contract("patient_map", "column length mismatch against N")
	}
	for i := 0; i < n; i++ {
		if s.EGFR[i] < 5 {
			return simerr.Contractf("egfr", "patient %d: eGFR must be >= 5, got %f", i, s.EGFR[i])
		}
		if s.SerumK[i] < 2.5 || s.SerumK[i] > 7.0 {
			return simerr.Contractf("serum_k", "patient %d: out of [2.5,7.0], got %f", i, s.SerumK[i])
		}
		if s.CurrentSBP[i] < 90 || s.CurrentSBP[i] > 220 {
			return simerr.Contractf("current_sbp", "patient %d: out of [90,220], got %f", i, s.CurrentSBP[i])
		}
		if s.TrueMeanSBP[i] < 80 || s.TrueMeanSBP[i] > 210 {
			return simerr.Contractf("true_mean_sbp", "patient %d: out of [80,210], got %f", i, s.TrueMeanSBP[i])
		}
		if isNaNNotSentinel(s.TimeSinceLastCVEvent[i]) {
			return simerr.Contractf("time_since_last_cv_event", "patient %d: NaN is not a valid value, use the never sentinel", i)
		}
		if isNaNNotSentinel(s.TimeSinceLastTIA[i]) {
			return simerr.Contractf("time_since_last_tia", "patient %d: NaN is not a valid value, use the never sentinel", i)
		}
	}
	return nil
}

func isNaNNotSentinel(x float64) bool {
	return x != x // NaN is the only float that is unequal to itself.
}
