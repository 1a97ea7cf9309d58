package treatment

import (
	"hmse/model"
	"hmse/risk"
	"hmse/rng"
	"hmse/transition"
)

// AdvanceTime performs step 15 of the monthly kernel loop: ages the
// patient, advances every time counter, decays eGFR, drifts potassium
// toward its eGFR-dependent target, and recomputes renal state, per
// §4.3.
func AdvanceTime(s *model.Store, i int, cycleMonths float64, useKFREModel bool, r *rng.Source) {
	s.Age[i] += cycleMonths / 12
	s.TimeInSimulation[i] += cycleMonths
	s.TimeInState[i] += cycleMonths
	s.TimeInRenalState[i] += cycleMonths
	s.TimeSinceAdherenceChange[i] += cycleMonths
	if !model.IsNever(s.TimeSinceLastCVEvent[i]) {
		s.TimeSinceLastCVEvent[i] += cycleMonths
	}
	if !model.IsNever(s.TimeSinceLastTIA[i]) {
		s.TimeSinceLastTIA[i] += cycleMonths
	}

	var kfre2yr float64
	if useKFREModel && s.EGFR[i] < 60 {
		kfre2yr = risk.TwoYearRisk(risk.KFREInputs{
			Age:    s.Age[i],
			EGFR:   s.EGFR[i],
			UACR:   s.UACR[i],
			Female: s.Sex[i] == model.Female,
		})
	}

	decline := risk.AnnualEGFRDecline(risk.EGFRDeclineInputs{
		Age:          s.Age[i],
		EGFR:         s.EGFR[i],
		UACR:         s.UACR[i],
		SBP:          s.CurrentSBP[i],
		Diabetes:     s.Diabetes[i],
		OnSGLT2i:     s.OnSGLT2i[i],
		UseKFREModel: useKFREModel,
		KFRE2yr:      kfre2yr,
	})
	declineFactor := s.ModESRD[i] * transition.TreatmentRiskFactor(s.TreatmentResponseMod[i], transition.TreatmentCoefESRD)
	s.EGFR[i] -= decline * declineFactor * (cycleMonths / 12)
	if s.EGFR[i] < 5 {
		s.EGFR[i] = 5
	}

	advancePotassium(s, i, r)

	recomputeRenalState(s, i)
}

func potassiumTarget(egfr float64, onMRA bool) float64 {
	target := 4.2
	switch {
	case egfr < 15:
		target = 5.2
	case egfr < 30:
		target = 4.8
	case egfr < 60:
		target = 4.5
	}
	if onMRA {
		target += 0.4
	}
	return target
}

func advancePotassium(s *model.Store, i int, r *rng.Source) {
	target := potassiumTarget(s.EGFR[i], s.Treatment[i] == model.MRA)
	noiseSD := 0.2
	if s.EGFR[i] > 60 {
		noiseSD = 0.1
	}
	k := s.SerumK[i] + 0.2*(target-s.SerumK[i]) + noiseSD*r.Normal()
	k = clamp(k, 2.5, 7.0)
	s.SerumK[i] = k
	s.HyperkalemiaFlag[i] = k > 5.5
}

// recomputeRenalState maps eGFR to a renal stage. ESRD and RenalDeath
// are sticky: eGFR recovering transiently never decrements renal
// state below an already-reached ESRD stage, and RenalDeath is only
// ever set by ESRDMortalitySample.
func recomputeRenalState(s *model.Store, i int) {
	if s.Renal[i] == model.RenalDeath || s.Renal[i] == model.ESRD {
		return
	}
	var next model.RenalState
	switch {
	case s.EGFR[i] >= 60:
		next = model.CKD1_2
	case s.EGFR[i] >= 45:
		next = model.CKD3a
	case s.EGFR[i] >= 30:
		next = model.CKD3b
	case s.EGFR[i] >= 15:
		next = model.CKD4
	default:
		next = model.ESRD
	}
	if next != s.Renal[i] {
		s.Renal[i] = next
		s.TimeInRenalState[i] = 0
	}
}

// ESRDMortalitySample runs step 16: for ESRD patients, samples
// non-CV mortality at an annual rate derived from the shared ESRD
// mortality base, with age and diabetes multipliers. Returns true if
// the patient transitions to RenalDeath this cycle.
func ESRDMortalitySample(s *model.Store, i int, r *rng.Source) bool {
	if s.Renal[i] != model.ESRD {
		return false
	}
	annual := 0.4 * risk.ESRDMortalityBaseAnnual
	switch {
	case s.Age[i] >= 75:
		annual *= 1.5
	case s.Age[i] >= 65:
		annual *= 1.2
	}
	if s.Diabetes[i] {
		annual *= 1.3
	}
	monthly := risk.MonthlyFromAnnual(annual)
	if r.Float64() < monthly {
		s.Renal[i] = model.RenalDeath
		return true
	}
	return false
}
