package costs

import "hmse/model"

func baselineUtility(age float64) float64 {
	switch {
	case age < 50:
		return 0.87
	case age < 60:
		return 0.84
	case age < 70:
		return 0.81
	case age < 80:
		return 0.77
	case age < 90:
		return 0.72
	default:
		return 0.67
	}
}

func sbpGradientPenalty(sbp float64) float64 {
	if sbp < 130 {
		return 0
	}
	if sbp > 200 {
		return 0.08
	}
	return 0.08 * (sbp - 130) / (200 - 130)
}

// UtilityInputs bundles the patient state the monthly utility
// computation reads.
type UtilityInputs struct {
	Age                  float64
	Cardiac              model.CardiacState
	CurrentSBP           float64
	Renal                model.RenalState
	Neuro                model.NeuroState
	Diabetes             bool
	AF                   bool
	Hyperkalemia         bool
	NumAntihypertensives int
}

// MonthlyUtility computes the additive-disutility monthly utility
// score, clamped at a 0 floor, per §4.4.
func MonthlyUtility(in UtilityInputs, p *model.PSAParams) float64 {
	u := baselineUtility(in.Age)

	switch in.Cardiac {
	case model.AcuteMI:
		u -= 0.20
	case model.AcuteIschemicStroke:
		u -= 0.35
	case model.AcuteHemorrhagicStroke:
		u -= 0.50
	case model.PostMI:
		u -= p.DisutilityPostMI
	case model.PostStroke:
		u -= p.DisutilityPostStroke
	case model.TIA:
		u -= 0.10
	case model.AcuteHF:
		u -= 0.25
	case model.ChronicHF:
		u -= p.DisutilityChronicHF
	case model.NoAcuteEvent:
		u -= sbpGradientPenalty(in.CurrentSBP)
	}

	switch in.Renal {
	case model.CKD3a:
		u -= 0.01
	case model.CKD3b:
		u -= 0.03
	case model.CKD4:
		u -= 0.06
	case model.ESRD:
		u -= p.DisutilityESRD
	}

	switch in.Neuro {
	case model.MCI:
		u -= 0.05
	case model.Dementia:
		u -= p.DisutilityDementia
	}

	if in.Diabetes {
		u -= 0.04
	}
	if in.AF {
		u -= 0.05
	}
	if in.Hyperkalemia {
		u -= 0.03
	}

	if in.NumAntihypertensives >= 3 && in.CurrentSBP >= 140 {
		excess := (in.CurrentSBP - 140) / 40
		if excess > 1 {
			excess = 1
		}
		u -= 0.01 + 0.01*excess
	}

	if u < 0 {
		u = 0
	}
	return u / 12
}
