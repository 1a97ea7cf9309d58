package treatment

import (
	"hmse/model"
	"hmse/rng"
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// UpdateSBP performs the monthly SBP/DBP update, per §4.3:
// current_sbp += 0.05 + 2*Z - active_treatment_effect, then
// true_mean_sbp = current_sbp - white_coat_offset. Both clamped to
// their respective ranges; current DBP derived as 0.6*current SBP.
func UpdateSBP(s *model.Store, i int, r *rng.Source) {
	z := r.Normal()
	sbp := s.CurrentSBP[i] + 0.05 + 2*z - s.ActiveTreatmentEffect[i]
	sbp = clamp(sbp, 90, 220)
	s.CurrentSBP[i] = sbp
	s.CurrentDBP[i] = 0.6 * sbp

	trueMean := sbp - s.WhiteCoatOff[i]
	s.TrueMeanSBP[i] = clamp(trueMean, 80, 210)
}
