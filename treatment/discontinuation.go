package treatment

import (
	"hmse/model"
	"hmse/risk"
	"hmse/rng"
)

// CheckDiscontinuation runs the monthly discontinuation check for
// patient i (StandardCare is excluded per §4.3) and, on a hit,
// reassigns the patient to StandardCare. Returns true if the patient
// discontinued this cycle.
func CheckDiscontinuation(s *model.Store, i int, psa *model.PSAParams, r *rng.Source, nowMonth float64) bool {
	if s.Treatment[i] == model.StandardCare {
		return false
	}

	var base float64
	if s.Treatment[i] == model.Intervention {
		base = psa.DiscontinuationRateIxa
	} else {
		base = psa.DiscontinuationRateSpiro
	}

	// Achieved SBP reduction is the active treatment effect itself
	// (the mmHg actually being delivered this cycle).
	achieved := s.ActiveTreatmentEffect[i]
	mult := 1.0
	switch {
	case achieved >= 15:
		mult *= 0.6
	case achieved >= 10:
		mult *= 0.8
	case achieved < 5:
		mult *= 1.3
	}

	monthsOnTreatment := nowMonth - s.LastTreatmentChangeMonth[i]
	switch {
	case monthsOnTreatment <= 3:
		mult *= 1.5
	case monthsOnTreatment <= 6:
		mult *= 1.2
	case monthsOnTreatment >= 24:
		mult *= 0.8
	}

	switch s.Treatment[i] {
	case model.MRA:
		if s.Sex[i] == model.Male && r.Float64() < 0.30 {
			mult *= 1.5
		}
		if s.HyperkalemiaFlag[i] {
			mult *= 2.0
		}
	case model.Intervention:
		if s.SDI[i] > 75 {
			mult *= 1.3
		}
	}

	annual := base * mult
	if annual > 0.40 {
		annual = 0.40
	}
	monthly := risk.MonthlyFromAnnual(annual)

	if r.Float64() >= monthly {
		return false
	}

	s.MRADoseReduced[i] = false
	Assign(s, i, model.StandardCare, psa, r, nowMonth)
	return true
}
