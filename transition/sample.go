package transition

import "hmse/model"

// Cause identifies which event fired during multinomial sampling, or
// CauseNone if no event fired this cycle.
type Cause int8

const (
	CauseNone Cause = iota
	CauseCVDeath
	CauseNonCVDeath
	CauseMI
	CauseHemorrhagicStroke
	CauseIschemicStroke
	CauseHF
	CauseTIA
)

// Sample walks p's seven probabilities in the fixed cause order
// (CVDeath, NonCVDeath, MI, HemorrhagicStroke, IschemicStroke, HF,
// TIA), accumulating, against a uniform draw u. Returns the first
// cause whose cumulative probability reaches u, or CauseNone if the
// draw falls past the end.
func Sample(p *Probs, u float64) Cause {
	acc := p.CVDeath
	if u < acc {
		return CauseCVDeath
	}
	acc += p.NonCVDeath
	if u < acc {
		return CauseNonCVDeath
	}
	acc += p.MI
	if u < acc {
		return CauseMI
	}
	acc += p.HemorrhagicStroke
	if u < acc {
		return CauseHemorrhagicStroke
	}
	acc += p.IschemicStroke
	if u < acc {
		return CauseIschemicStroke
	}
	acc += p.HF
	if u < acc {
		return CauseHF
	}
	acc += p.TIA
	if u < acc {
		return CauseTIA
	}
	return CauseNone
}

// AcuteToChronic maps an acute or TIA cardiac state to its chronic
// successor when "no event" is sampled in that state. changed is
// false (state unchanged) for any other current state.
func AcuteToChronic(cardiac model.CardiacState) (next model.CardiacState, changed bool) {
	switch cardiac {
	case model.AcuteMI:
		return model.PostMI, true
	case model.AcuteIschemicStroke, model.AcuteHemorrhagicStroke:
		return model.PostStroke, true
	case model.AcuteHF:
		return model.ChronicHF, true
	case model.TIA:
		return model.NoAcuteEvent, true
	default:
		return cardiac, false
	}
}
