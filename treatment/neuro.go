package treatment

import (
	"math"

	"hmse/model"
	"hmse/risk"
	"hmse/rng"
)

func neuroAgeMultiplier(age float64) float64 {
	m := math.Pow(2, (age-65)/5)
	if m < 1 {
		m = 1
	}
	return m
}

func neuroBPMultiplier(trueMeanSBP float64) float64 {
	m := 1 + 0.15*(trueMeanSBP-120)/10
	if m < 1 {
		m = 1
	}
	return m
}

// CheckNeuroProgression runs the monthly cognitive-progression check
// for patient i. Returns true if the patient newly reaches Dementia
// this cycle.
func CheckNeuroProgression(s *model.Store, i int, r *rng.Source) (newDementia bool) {
	ageMult := neuroAgeMultiplier(s.Age[i])
	bpMult := neuroBPMultiplier(s.TrueMeanSBP[i])

	switch s.Neuro[i] {
	case model.NeuroNormal:
		dementiaAnnual := 0.005 * ageMult * bpMult
		if r.Float64() < risk.MonthlyFromAnnual(dementiaAnnual) {
			s.Neuro[i] = model.Dementia
			return true
		}
		mciAnnual := 0.02 * ageMult * bpMult
		if r.Float64() < risk.MonthlyFromAnnual(mciAnnual) {
			s.Neuro[i] = model.MCI
		}
	case model.MCI:
		dementiaAnnual := 0.10 * ageMult * bpMult
		if r.Float64() < risk.MonthlyFromAnnual(dementiaAnnual) {
			s.Neuro[i] = model.Dementia
			return true
		}
	}
	return false
}
