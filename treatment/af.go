package treatment

import (
	"hmse/model"
	"hmse/risk"
	"hmse/rng"
)

func afBaseAnnual(age float64) float64 {
	switch {
	case age < 40:
		return 0.002
	case age < 50:
		return 0.004
	case age < 60:
		return 0.010
	case age < 70:
		return 0.025
	default:
		return 0.050
	}
}

// CheckAFOnset runs the monthly AF-onset check for patient i. Returns
// true if AF newly onsets this cycle.
func CheckAFOnset(s *model.Store, i int, r *rng.Source) bool {
	if s.AtrialFibrillation[i] {
		return false
	}

	annual := afBaseAnnual(s.Age[i])

	if s.PrimaryAldosteronism[i] {
		mult := 12.0
		if s.IsAdherent[i] {
			switch s.Treatment[i] {
			case model.Intervention:
				mult *= 0.40
			case model.MRA:
				mult *= 0.60
			}
		}
		annual *= mult
	}
	if s.HeartFailure[i] {
		annual *= 4.0
	}
	excess := s.CurrentSBP[i] - 140
	if excess > 0 {
		annual *= 1 + 0.15*excess/10
	}
	if s.Diabetes[i] {
		annual *= 1.4
	}
	if s.BMI[i] >= 30 {
		annual *= 1.5
	}

	if annual > 0.25 {
		annual = 0.25
	}
	monthly := risk.MonthlyFromAnnual(annual)

	if r.Float64() >= monthly {
		return false
	}
	s.AtrialFibrillation[i] = true
	return true
}
