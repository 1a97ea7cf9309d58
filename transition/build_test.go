package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/model"
	"hmse/risk"
	"hmse/transition"
)

func baseBuildContext() transition.BuildContext {
	return transition.BuildContext{
		Age:              60,
		TrueMeanSBP:      140,
		EGFR:             80,
		TotalCholesterol: 200,
		HDL:              50,
		BMI:              27,
		Dipping:          model.NormalDipper,
		TreatmentResponseMod: 1.0,
		ModMI:            1.0,
		ModStroke:        1.0,
		ModHF:            1.0,
		ModDeath:         1.0,
		LifeTable:        risk.USMaleLifeTable,
	}
}

func TestBuildChronicPriorMIAtLeastDoublesMIRisk(t *testing.T) {
	var pNoHistory, pHistory transition.Probs

	ctx := baseBuildContext()
	transition.BuildChronic(&pNoHistory, ctx)

	ctx.PriorMI = true
	transition.BuildChronic(&pHistory, ctx)

	assert.GreaterOrEqual(t, pHistory.MI, 2*pNoHistory.MI)
}

func TestBuildChronicPriorStrokeIncreasesStrokeRisk(t *testing.T) {
	var pNoHistory, pHistory transition.Probs

	ctx := baseBuildContext()
	transition.BuildChronic(&pNoHistory, ctx)

	ctx.PriorAnyStroke = true
	transition.BuildChronic(&pHistory, ctx)

	totalNoHistory := pNoHistory.IschemicStroke + pNoHistory.HemorrhagicStroke
	totalHistory := pHistory.IschemicStroke + pHistory.HemorrhagicStroke
	assert.Greater(t, totalHistory, totalNoHistory)
}

func TestBuildChronicSkipsHFWhenAlreadyChronicHF(t *testing.T) {
	var p transition.Probs
	ctx := baseBuildContext()
	ctx.Cardiac = model.ChronicHF
	transition.BuildChronic(&p, ctx)
	assert.Equal(t, 0.0, p.HF)
}

func TestBuildChronicSGLT2iReducesHFRisk(t *testing.T) {
	var withoutSGLT2i, withSGLT2i transition.Probs

	ctx := baseBuildContext()
	transition.BuildChronic(&withoutSGLT2i, ctx)

	ctx.OnSGLT2i = true
	transition.BuildChronic(&withSGLT2i, ctx)

	assert.Less(t, withSGLT2i.HF, withoutSGLT2i.HF)
}

func TestBuildChronicAllProbabilitiesNonNegative(t *testing.T) {
	var p transition.Probs
	ctx := baseBuildContext()
	ctx.PriorMI = true
	ctx.PriorAnyStroke = true
	ctx.RenalESRD = true
	ctx.HasHeartFailure = true
	transition.BuildChronic(&p, ctx)

	for _, v := range []float64{p.CVDeath, p.NonCVDeath, p.MI, p.HemorrhagicStroke, p.IschemicStroke, p.HF, p.TIA} {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestBuildChronicDippingIncreasesStrokeAndMIRisk(t *testing.T) {
	var normal, reverse transition.Probs

	ctx := baseBuildContext()
	transition.BuildChronic(&normal, ctx)

	ctx.Dipping = model.ReverseDipper
	transition.BuildChronic(&reverse, ctx)

	assert.Greater(t, reverse.MI, normal.MI)
	assert.Greater(t, reverse.IschemicStroke+reverse.HemorrhagicStroke, normal.IschemicStroke+normal.HemorrhagicStroke)
}
