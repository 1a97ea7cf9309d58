package treatment

import (
	"hmse/costs"
	"hmse/model"
	"hmse/rng"
)

// HyperkalemiaAction reports what management action, if any, fired
// during a quarterly check.
type HyperkalemiaAction int8

const (
	ActionNone HyperkalemiaAction = iota
	ActionStartBinder
	ActionReduceDose
	ActionStop
)

// IsQuarterlyCheckMonth reports whether the quarterly hyperkalemia
// check fires this cycle: round(time_in_simulation) mod 3 == 0. This
// fires at month 0, before any time has passed, preserved as
// specified.
func IsQuarterlyCheckMonth(timeInSimulation float64) bool {
	months := int64(timeInSimulation + 0.5)
	return months%3 == 0
}

// CheckHyperkalemia runs the quarterly MRA potassium-management check
// for patient i. A lab cost accrues unconditionally for every MRA
// patient on a quarterly boundary. Returns the action taken and the
// lab/management cost incurred this cycle (not yet discounted).
func CheckHyperkalemia(s *model.Store, i int, psa *model.PSAParams, r *rng.Source, nowMonth float64) (HyperkalemiaAction, float64) {
	if s.Treatment[i] != model.MRA || !IsQuarterlyCheckMonth(s.TimeInSimulation[i]) {
		return ActionNone, 0
	}

	cost := costs.LabCostQuarterly()
	k := s.SerumK[i]

	switch {
	case k > 6.0:
		s.HyperkalemiaHistory[i]++
		Assign(s, i, model.StandardCare, psa, r, nowMonth)
		return ActionStop, cost

	case k > 5.5:
		if !s.OnKBinder[i] {
			s.OnKBinder[i] = true
			s.SerumK[i] -= 0.3
			s.HyperkalemiaHistory[i]++
			cost += costs.BinderCostMonthly()
			return ActionStartBinder, cost
		}
		if !s.MRADoseReduced[i] {
			reduceDose(s, i)
			return ActionReduceDose, cost
		}
		s.HyperkalemiaHistory[i]++
		Assign(s, i, model.StandardCare, psa, r, nowMonth)
		return ActionStop, cost

	case k > 5.0:
		if !s.MRADoseReduced[i] && r.Float64() < 0.3 {
			reduceDose(s, i)
			return ActionReduceDose, cost
		}
	}

	return ActionNone, cost
}

func reduceDose(s *model.Store, i int) {
	s.MRADoseReduced[i] = true
	s.BaseTreatmentEffect[i] *= 0.5
	s.ActiveTreatmentEffect[i] *= 0.5
}
