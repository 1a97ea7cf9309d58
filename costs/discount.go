// Package costs implements per-cycle direct/indirect cost accrual,
// QALY/utility weighting, and discounting, per §4.4.
package costs

import "math"

// Factor returns the discount weight applied to any cost or QALY
// accrued at simulation month t, for an annual discount rate r and
// cycle length in months. When halfCycle is set, accrual is shifted
// to the cycle midpoint.
func Factor(t, cycleLengthMonths, annualRate float64, halfCycle bool) float64 {
	tt := t
	if halfCycle {
		tt += 0.5 * cycleLengthMonths
	}
	return 1 / math.Pow(1+annualRate, tt/12)
}
