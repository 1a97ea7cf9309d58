package treatment

import (
	"hmse/model"
	"hmse/rng"
)

// CheckTIAToStroke runs the monthly TIA-to-stroke conversion check,
// per §4.3. Active only for the 3 months following a recorded TIA.
// Returns true if the patient converts to a fresh AcuteIschemicStroke
// this cycle.
func CheckTIAToStroke(s *model.Store, i int, r *rng.Source) bool {
	if s.PriorTIACount[i] == 0 || model.IsNever(s.TimeSinceLastTIA[i]) {
		return false
	}
	monthsSince := s.TimeSinceLastTIA[i]
	if monthsSince > 3 {
		return false
	}

	var base float64
	switch {
	case monthsSince <= 1:
		base = 0.05
	case monthsSince <= 2:
		base = 0.03
	default:
		base = 0.02
	}

	if s.CurrentSBP[i] >= 140 {
		base *= 1.5
	}
	if s.Diabetes[i] {
		base *= 1.3
	}
	if s.AtrialFibrillation[i] {
		base *= 1.4
	}
	if base > 0.15 {
		base = 0.15
	}

	if r.Float64() >= base {
		return false
	}

	s.Cardiac[i] = model.AcuteIschemicStroke
	s.TimeInState[i] = 0
	s.PriorAnyStrokeCount[i]++
	s.PriorIschemicStrokeCount[i]++
	s.TimeSinceLastCVEvent[i] = 0
	s.IschemicStrokes[i]++
	return true
}
