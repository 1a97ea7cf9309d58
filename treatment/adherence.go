package treatment

import (
	"hmse/model"
	"hmse/risk"
	"hmse/rng"
)

// CheckAdherence runs the monthly two-state adherence Markov
// transition for patient i and reports whether adherence flipped this
// cycle. Callers must call RefreshActiveEffect when it does (step 1 of
// the kernel loop does this directly).
func CheckAdherence(s *model.Store, i int, r *rng.Source, nowMonth float64) bool {
	var annual float64
	if s.IsAdherent[i] {
		annual = adherentToNonAdherentAnnual(s, i, nowMonth)
	} else {
		annual = nonAdherentToAdherentAnnual(s, i)
	}
	monthly := risk.MonthlyFromAnnual(annual)
	if r.Float64() >= monthly {
		return false
	}
	s.IsAdherent[i] = !s.IsAdherent[i]
	s.TimeSinceAdherenceChange[i] = 0
	return true
}

func adherentToNonAdherentAnnual(s *model.Store, i int, nowMonth float64) float64 {
	monthsOnTreatment := nowMonth - s.LastTreatmentChangeMonth[i]
	var base float64
	switch {
	case monthsOnTreatment <= 6:
		base = 0.20
	case monthsOnTreatment <= 12:
		base = 0.12
	default:
		base = 0.08
	}

	age := s.Age[i]
	sdi := s.SDI[i]
	demographicMult := 1.0
	switch {
	case age < 40:
		demographicMult *= 1.5
	case age >= 40 && age < 50:
		demographicMult *= 1.3
	case age > 75:
		demographicMult *= 1.2
	}
	switch {
	case sdi > 75:
		demographicMult *= 1.4
	case sdi > 50 && sdi <= 75:
		demographicMult *= 1.2
	}
	if age < 50 && sdi > 75 {
		demographicMult *= 1.2
	}

	treatmentMult := 1.0
	switch s.Treatment[i] {
	case model.Intervention:
		treatmentMult = 0.48
	case model.MRA:
		if s.Sex[i] == model.Male {
			treatmentMult = 1.4
		} else {
			treatmentMult = 1.2
		}
		if s.HyperkalemiaHistory[i] > 0 {
			treatmentMult *= 1.3
		}
	}

	if !model.IsNever(s.TimeSinceLastCVEvent[i]) && s.TimeSinceLastCVEvent[i] <= 12 {
		demographicMult *= 0.7
	}

	annual := base * demographicMult * treatmentMult
	if annual > 0.50 {
		annual = 0.50
	}
	return annual
}

func nonAdherentToAdherentAnnual(s *model.Store, i int) float64 {
	annual := 0.05
	if !model.IsNever(s.TimeSinceLastCVEvent[i]) && s.TimeSinceLastCVEvent[i] <= 6 {
		annual = 0.30
	}
	if s.CurrentSBP[i] >= 180 {
		annual += 0.10
	}
	return annual
}
