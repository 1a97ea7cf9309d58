// Package transition assembles cause-specific monthly event
// probabilities from the risk equations and samples one (or none) per
// patient per cycle, composing competing risks per §4.2.
package transition

import "hmse/model"

// Probs is the per-patient scratch struct holding the seven
// cause-specific monthly probabilities, in the fixed sampling order
// used throughout this package. The kernel reuses one Probs for every
// patient and cycle of a run instead of allocating — the "scratch" pattern
// suggested for SoA designs.
type Probs struct {
	CVDeath            float64
	NonCVDeath         float64
	MI                 float64
	HemorrhagicStroke  float64
	IschemicStroke     float64
	HF                 float64
	TIA                float64
}

// Reset zeroes every field.
func (p *Probs) Reset() {
	*p = Probs{}
}

// Sum returns the sum of all seven probabilities.
func (p *Probs) Sum() float64 {
	return p.CVDeath + p.NonCVDeath + p.MI + p.HemorrhagicStroke + p.IschemicStroke + p.HF + p.TIA
}

// caseFatality is the CVDeath probability emitted during the acute
// month for each acute cardiac state, per §4.2.
var caseFatality = map[model.CardiacState]float64{
	model.AcuteMI:                0.08,
	model.AcuteIschemicStroke:    0.10,
	model.AcuteHemorrhagicStroke: 0.25,
	model.AcuteHF:                0.05,
}

// BuildAcute fills p for a patient currently in an acute state: the
// only nonzero probability is CVDeath at the case-fatality rate.
func BuildAcute(p *Probs, cardiac model.CardiacState) {
	p.Reset()
	p.CVDeath = caseFatality[cardiac]
}

// TreatmentRiskFactor implements the per-outcome treatment risk
// factor: clamp(1-(m-1)*c, 0.5, 1.5).
func TreatmentRiskFactor(m, c float64) float64 {
	f := 1 - (m-1)*c
	if f < 0.5 {
		return 0.5
	}
	if f > 1.5 {
		return 1.5
	}
	return f
}

const (
	TreatmentCoefMI    = 0.30
	TreatmentCoefStroke = 0.40
	TreatmentCoefHF    = 0.50
	TreatmentCoefESRD  = 0.55
	TreatmentCoefDeath = 0.35
)

// StrokeSubtypeSplit returns the hemorrhagic-fraction of total stroke
// risk, per §4.2.
func StrokeSubtypeSplit(dynamic bool, age, sbp float64, hasAF, priorTIA bool) (hemorrhagicFraction float64) {
	if !dynamic {
		return 0.15
	}
	f := 0.15
	switch {
	case age >= 80:
		f += 0.05
	case age >= 70:
		f += 0.03
	case age >= 60:
		f += 0.01
	}
	switch {
	case sbp >= 180:
		f += 0.10
	case sbp >= 160:
		f += 0.05
	case sbp >= 140:
		f += 0.02
	}
	if hasAF {
		f -= 0.05
	}
	if priorTIA {
		f -= 0.03
	}
	if f < 0.05 {
		f = 0.05
	}
	if f > 0.40 {
		f = 0.40
	}
	return f
}

// CVDeathAnnualBase returns the chronic-state base annual CVDeath
// rate table entry, per §4.2.
func CVDeathAnnualBase(cardiac model.CardiacState, timeInStateMonths float64) float64 {
	switch cardiac {
	case model.PostMI:
		if timeInStateMonths < 12 {
			return 0.05
		}
		return 0.03
	case model.PostStroke:
		if timeInStateMonths < 12 {
			return 0.10
		}
		return 0.05
	case model.ChronicHF:
		return 0.08
	default:
		return 0.01
	}
}
