package costs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/costs"
	"hmse/model"
)

func baseUtilityInputs() costs.UtilityInputs {
	return costs.UtilityInputs{
		Age:        55,
		Cardiac:    model.NoAcuteEvent,
		CurrentSBP: 125,
		Renal:      model.CKD1_2,
		Neuro:      model.NeuroNormal,
	}
}

func baseParams() *model.PSAParams {
	return &model.PSAParams{
		DisutilityPostMI:     0.08,
		DisutilityPostStroke: 0.15,
		DisutilityChronicHF:  0.12,
		DisutilityESRD:       0.20,
		DisutilityDementia:   0.30,
	}
}

func TestMonthlyUtilityNeverNegative(t *testing.T) {
	in := baseUtilityInputs()
	in.Age = 95
	in.Cardiac = model.AcuteHemorrhagicStroke
	in.Renal = model.ESRD
	in.Neuro = model.Dementia
	in.Diabetes = true
	in.AF = true
	in.Hyperkalemia = true
	in.NumAntihypertensives = 5
	in.CurrentSBP = 220

	u := costs.MonthlyUtility(in, baseParams())
	assert.GreaterOrEqual(t, u, 0.0)
}

func TestMonthlyUtilityDecreasesWithAcuteEvents(t *testing.T) {
	healthy := costs.MonthlyUtility(baseUtilityInputs(), baseParams())

	acute := baseUtilityInputs()
	acute.Cardiac = model.AcuteHemorrhagicStroke
	sick := costs.MonthlyUtility(acute, baseParams())

	assert.Less(t, sick, healthy)
}

func TestMonthlyUtilityDecreasesWithChronicRenalStage(t *testing.T) {
	in := baseUtilityInputs()
	ckd1 := costs.MonthlyUtility(in, baseParams())
	in.Renal = model.CKD4
	ckd4 := costs.MonthlyUtility(in, baseParams())
	assert.Less(t, ckd4, ckd1)
}

func TestMonthlyUtilityDecreasesWithDementia(t *testing.T) {
	in := baseUtilityInputs()
	normal := costs.MonthlyUtility(in, baseParams())
	in.Neuro = model.Dementia
	dementia := costs.MonthlyUtility(in, baseParams())
	assert.Less(t, dementia, normal)
}

func TestMonthlyUtilityIsAnAnnualValueDividedByTwelve(t *testing.T) {
	in := baseUtilityInputs()
	u := costs.MonthlyUtility(in, baseParams())
	// Monthly utility should be roughly baseline/12, well under 1.
	assert.Less(t, u, 0.1)
	assert.Greater(t, u, 0.0)
}
