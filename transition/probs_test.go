package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/model"
	"hmse/transition"
)

func TestBuildAcuteSetsOnlyCVDeath(t *testing.T) {
	var p transition.Probs
	transition.BuildAcute(&p, model.AcuteMI)
	assert.Equal(t, 0.08, p.CVDeath)
	assert.Equal(t, 0.0, p.MI)
	assert.Equal(t, 0.0, p.HF)
}

func TestBuildAcuteCaseFatalityVariesByState(t *testing.T) {
	var p transition.Probs
	transition.BuildAcute(&p, model.AcuteHemorrhagicStroke)
	assert.Equal(t, 0.25, p.CVDeath)
}

func TestProbsSumAddsAllSevenFields(t *testing.T) {
	p := transition.Probs{CVDeath: 0.01, NonCVDeath: 0.02, MI: 0.03, HemorrhagicStroke: 0.04, IschemicStroke: 0.05, HF: 0.06, TIA: 0.07}
	assert.InDelta(t, 0.28, p.Sum(), 1e-9)
}

func TestProbsResetZeroesEverything(t *testing.T) {
	p := transition.Probs{CVDeath: 1, MI: 1}
	p.Reset()
	assert.Equal(t, 0.0, p.Sum())
}

func TestTreatmentRiskFactorClampsToRange(t *testing.T) {
	assert.Equal(t, 0.5, transition.TreatmentRiskFactor(10, 1.0))
	assert.Equal(t, 1.5, transition.TreatmentRiskFactor(-10, 1.0))
}

func TestTreatmentRiskFactorNeutralAtModifierOne(t *testing.T) {
	assert.Equal(t, 1.0, transition.TreatmentRiskFactor(1.0, 0.30))
}

func TestStrokeSubtypeSplitStaticModeReturnsFixedFraction(t *testing.T) {
	assert.Equal(t, 0.15, transition.StrokeSubtypeSplit(false, 90, 200, true, true))
}

func TestStrokeSubtypeSplitDynamicIncreasesWithAgeAndSBP(t *testing.T) {
	low := transition.StrokeSubtypeSplit(true, 50, 120, false, false)
	high := transition.StrokeSubtypeSplit(true, 85, 190, false, false)
	assert.Greater(t, high, low)
}

func TestStrokeSubtypeSplitClampedToRange(t *testing.T) {
	f := transition.StrokeSubtypeSplit(true, 85, 190, false, false)
	assert.LessOrEqual(t, f, 0.40)
	assert.GreaterOrEqual(t, f, 0.05)
}

func TestCVDeathAnnualBaseHigherInFirstYearPostEvent(t *testing.T) {
	early := transition.CVDeathAnnualBase(model.PostMI, 3)
	late := transition.CVDeathAnnualBase(model.PostMI, 24)
	assert.Greater(t, early, late)
}
