// Package risk implements the fixed risk equations: PREVENT 10-year
// CVD risk, KFRE kidney-failure risk, life-table mortality, eGFR
// decline, and the probability-horizon conversions they all share.
// Every function here is pure: inputs clamped to the domain, a single
// closed-form expression evaluated, nothing allocated, nothing
// mutated — the same "pure float64 helper" texture as the teacher's
// own numeric utilities.
package risk

import "math"

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MonthlyFromAnnual converts an annual probability to its monthly
// equivalent: 1 - (1-annual)^(1/12). Input clamped to [0,0.999] first.
func MonthlyFromAnnual(annual float64) float64 {
	a := clamp(annual, 0, 0.999)
	return 1 - math.Pow(1-a, 1.0/12.0)
}

// AnnualFromTenYear converts a 10-year probability to its annual
// equivalent: 1 - (1-tenYear)^0.1.
func AnnualFromTenYear(tenYear float64) float64 {
	t := clamp(tenYear, 0, 0.999)
	return 1 - math.Pow(1-t, 0.1)
}

// MonthlyFromTenYear composes AnnualFromTenYear and MonthlyFromAnnual.
func MonthlyFromTenYear(tenYear float64) float64 {
	return MonthlyFromAnnual(AnnualFromTenYear(tenYear))
}
