package risk

import "math"

// kfreCoefs is the Tangri 4-variable linear-predictor coefficient set,
// shared across the 2-year and 5-year horizons (only the baseline
// survival term differs by horizon).
type kfreCoefs struct {
	age    float64
	egfr   float64
	lnUACR float64
	female float64
}

var kfre4Var = kfreCoefs{
	age:    -0.2201,
	egfr:   -0.2467,
	lnUACR: 0.3820,
	female: -0.5710,
}

const (
	kfreS0_2yr = 0.9878
	kfreS0_5yr = 0.9409
)

// KFREInputs bundles the covariates for the Tangri 4-variable
// kidney-failure risk equation.
type KFREInputs struct {
	Age    float64
	EGFR   float64
	UACR   float64
	Female bool
}

func kfreLinearPredictor(in KFREInputs) float64 {
	c := kfre4Var
	uacr := clamp(in.UACR, 1, 5000)
	lp := c.age*(in.Age-60) + c.egfr*(in.EGFR-40) + c.lnUACR*(math.Log(uacr)-math.Log(100))
	if in.Female {
		lp += c.female
	}
	return lp
}

// TwoYearRisk returns the 2-year kidney-failure risk, clamped to
// [1e-4, 1-1e-4].
func TwoYearRisk(in KFREInputs) float64 {
	lp := kfreLinearPredictor(in)
	risk := 1 - math.Pow(kfreS0_2yr, math.Exp(lp))
	return clamp(risk, 1e-4, 1-1e-4)
}

// FiveYearRisk returns the 5-year kidney-failure risk, clamped to
// [1e-4, 1-1e-4].
func FiveYearRisk(in KFREInputs) float64 {
	lp := kfreLinearPredictor(in)
	risk := 1 - math.Pow(kfreS0_5yr, math.Exp(lp))
	return clamp(risk, 1e-4, 1-1e-4)
}
