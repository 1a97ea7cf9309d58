package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmse/kernel"
	"hmse/model"
	"hmse/rng"
	"hmse/treatment"
)

func testConfig(months int) *model.Config {
	return &model.Config{
		TimeHorizonMonths:        months,
		CycleLengthMonths:        1,
		DiscountRate:             0.03,
		CostPerspective:          "US",
		UseHalfCycleCorrection:   true,
		UseCompetingRisks:        true,
		UseDynamicStrokeSubtypes: true,
		UseKFREModel:             true,
		LifeTableCountry:         "US",
		EconomicPerspective:      model.HealthcareOnly,
	}
}

func testPSAParams() *model.PSAParams {
	return &model.PSAParams{
		IxaSBPMean: 20, IxaSBPSD: 4,
		SpiroSBPMean: 14, SpiroSBPSD: 4,
		DiscontinuationRateIxa: 0.10, DiscontinuationRateSpiro: 0.18,
		CostMIAcute: 18000, CostIschemicStrokeAcute: 22000, CostHemorrhagicStrokeAcute: 38000,
		CostHFAcute: 16000, CostESRDAnnual: 70000, CostPostStrokeAnnual: 6000, CostHFAnnual: 4500,
		CostIxaMonthly: 55,
		DisutilityPostMI: 0.08, DisutilityPostStroke: 0.15, DisutilityChronicHF: 0.12,
		DisutilityESRD: 0.20, DisutilityDementia: 0.30,
	}
}

func heterogeneousStore(n int) *model.Store {
	s := model.NewStore(n)
	for i := 0; i < n; i++ {
		s.Age[i] = 45 + float64(i%40)
		if i%2 == 0 {
			s.Sex[i] = model.Male
		} else {
			s.Sex[i] = model.Female
		}
		s.BaselineSBP[i] = 130 + float64(i%30)
		s.CurrentSBP[i] = s.BaselineSBP[i]
		s.TrueMeanSBP[i] = s.BaselineSBP[i]
		s.EGFR[i] = 50 + float64(i%50)
		s.TotalCholesterol[i] = 180 + float64(i%60)
		s.HDL[i] = 40 + float64(i%30)
		s.BMI[i] = 24 + float64(i%10)
		s.SerumK[i] = 4.2
		s.TreatmentResponseMod[i] = 1.0
		s.ModMI[i] = 1.0
		s.ModStroke[i] = 1.0
		s.ModHF[i] = 1.0
		s.ModESRD[i] = 1.0
		s.ModDeath[i] = 1.0
		s.IsAdherent[i] = true
		s.NumAntihypertensives[i] = 1
		s.UseKFREModel[i] = true
	}
	return s
}

func TestRunCompletesWithoutPanicAndProducesFiniteAggregate(t *testing.T) {
	n := 20
	s := heterogeneousStore(n)
	r := rng.New(42)
	for i := 0; i < n; i++ {
		treatment.Assign(s, i, model.Intervention, testPSAParams(), r, 0)
	}

	result := kernel.Run(s, testConfig(120), testPSAParams(), r)

	require.NotNil(t, result)
	assert.Equal(t, n, result.N)
	assert.False(t, result.MeanCosts() != result.MeanCosts()) // not NaN
	assert.GreaterOrEqual(t, result.TotalLifeYears, 0.0)
}

func TestRunIsDeterministicGivenIdenticalSeed(t *testing.T) {
	n := 10
	run := func(seed uint64) *model.AggregateResult {
		s := heterogeneousStore(n)
		for i := 0; i < n; i++ {
			s.Age[i] = 70
			s.EGFR[i] = 60
		}
		r := rng.New(seed)
		for i := 0; i < n; i++ {
			treatment.Assign(s, i, model.MRA, testPSAParams(), r, 0)
		}
		return kernel.Run(s, testConfig(60), testPSAParams(), r)
	}

	a := run(12345)
	b := run(12345)
	assert.Equal(t, a.TotalDirectCost, b.TotalDirectCost)
	assert.Equal(t, a.CVDeaths, b.CVDeaths)
	assert.Equal(t, a.MICount, b.MICount)
}

func TestRunDifferentArmsDivergeUnderIndependentRNG(t *testing.T) {
	n := 50
	run := func(t model.Treatment, seed uint64) *model.AggregateResult {
		s := heterogeneousStore(n)
		r := rng.New(seed)
		for i := 0; i < n; i++ {
			treatment.Assign(s, i, t, testPSAParams(), r, 0)
		}
		return kernel.Run(s, testConfig(240), testPSAParams(), r)
	}

	intervention := run(model.Intervention, 7)
	standardCare := run(model.StandardCare, 7)

	assert.NotEqual(t, intervention.MeanCosts(), standardCare.MeanCosts())
}

func TestRunZeroHorizonProducesZeroLifeYears(t *testing.T) {
	s := heterogeneousStore(3)
	r := rng.New(1)
	for i := 0; i < 3; i++ {
		treatment.Assign(s, i, model.StandardCare, testPSAParams(), r, 0)
	}
	result := kernel.Run(s, testConfig(0), testPSAParams(), r)
	assert.Equal(t, 0.0, result.TotalLifeYears)
}
