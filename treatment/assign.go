// Package treatment implements treatment assignment, adherence,
// discontinuation, hyperkalemia management, SBP dynamics, and the
// other per-cycle patient-state transitions driven by treatment, per
// §4.3.
package treatment

import (
	"hmse/model"
	"hmse/rng"
)

// standardCareSBPMean and standardCareSBPSD are StandardCare's own
// fixed response distribution (not PSA-varied): a small average
// effect from whatever baseline antihypertensive regimen a
// StandardCare patient is already on.
const (
	standardCareSBPMean = 8.0
	standardCareSBPSD   = 3.0
)

// Assign samples an individual SBP response for patient i's new
// treatment t and stores base/active treatment effects, per §4.3.
// Called on first assignment to a treatment (including reassignment
// after discontinuation).
func Assign(s *model.Store, i int, t model.Treatment, psa *model.PSAParams, r *rng.Source, nowMonth float64) {
	var mean, sd float64
	switch t {
	case model.Intervention:
		mean, sd = psa.IxaSBPMean, psa.IxaSBPSD
	case model.MRA:
		mean, sd = psa.SpiroSBPMean, psa.SpiroSBPSD
	case model.StandardCare:
		mean, sd = standardCareSBPMean, standardCareSBPSD
	}

	response := mean + sd*r.Normal()
	if response < 0 {
		response = 0
	}
	response *= s.TreatmentResponseMod[i]

	s.Treatment[i] = t
	s.BaseTreatmentEffect[i] = response
	s.LastTreatmentChangeMonth[i] = nowMonth
	s.MRADoseReduced[i] = false
	RefreshActiveEffect(s, i)
}

// RefreshActiveEffect recomputes the active treatment effect from the
// base effect and the patient's current adherence: base*0.3 if
// non-adherent, base*1.0 if adherent.
func RefreshActiveEffect(s *model.Store, i int) {
	if s.IsAdherent[i] {
		s.ActiveTreatmentEffect[i] = s.BaseTreatmentEffect[i]
	} else {
		s.ActiveTreatmentEffect[i] = 0.3 * s.BaseTreatmentEffect[i]
	}
}
