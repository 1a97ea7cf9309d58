package risk

import "math"

// PreventInputs bundles the clamped, patient-level covariates the
// PREVENT 10-year total-CVD equation consumes. Clamping happens
// inside TenYearCVDRisk so callers can pass raw patient values.
type PreventInputs struct {
	Age             float64
	SBP             float64
	EGFR            float64
	TotalCholesterol float64
	HDL             float64
	BMI             float64
	Diabetes        bool
	Smoker          bool
	BPTreated       bool
	UACR            float64 // 0 or negative means "not measured": enhancement skipped.
}

// preventCoefs is one sex's fixed linear-predictor coefficient set,
// retained to four-decimal precision.
type preventCoefs struct {
	intercept     float64
	lnAge         float64
	lnSBP         float64
	lnSBPxTreated float64
	bpTreated     float64
	diabetes      float64
	smoker        float64
	lnTotChol     float64
	lnHDL         float64
	lnEGFR        float64
	bmi           float64
	s0            float64 // 10-year baseline survival at the mean linear predictor.
}

var maleCoefs = preventCoefs{
	intercept:     -11.7209,
	lnAge:         3.0145,
	lnSBP:         1.7558,
	lnSBPxTreated: 0.2040,
	bpTreated:     -1.0557,
	diabetes:      0.6524,
	smoker:        0.5892,
	lnTotChol:     0.3809,
	lnHDL:         -0.4590,
	lnEGFR:        -0.3523,
	bmi:           0.0096,
	s0:            0.9144,
}

var femaleCoefs = preventCoefs{
	intercept:     -12.8232,
	lnAge:         3.1784,
	lnSBP:         1.8429,
	lnSBPxTreated: 0.1912,
	bpTreated:     -0.9981,
	diabetes:      0.7143,
	smoker:        0.5379,
	lnTotChol:     0.3467,
	lnHDL:         -0.5126,
	lnEGFR:        -0.3112,
	bmi:           0.0104,
	s0:            0.9336,
}

// TenYearCVDRisk computes the PREVENT 10-year total-CVD risk for one
// patient. female selects the sex-specific coefficient set.
func TenYearCVDRisk(in PreventInputs, female bool) float64 {
	age := clamp(in.Age, 30, 79)
	sbp := clamp(in.SBP, 80, 220)
	egfr := clamp(in.EGFR, 15, 120)
	chol := clamp(in.TotalCholesterol, 100, 400)
	hdl := clamp(in.HDL, 20, 100)
	bmi := clamp(in.BMI, 15, 50)

	c := maleCoefs
	if female {
		c = femaleCoefs
	}

	lnSBP := math.Log(sbp)
	xb := c.intercept +
		c.lnAge*math.Log(age) +
		c.lnSBP*lnSBP +
		c.lnTotChol*math.Log(chol) +
		c.lnHDL*math.Log(hdl) +
		c.lnEGFR*math.Log(egfr) +
		c.bmi*bmi

	if in.BPTreated {
		xb += c.bpTreated + c.lnSBPxTreated*lnSBP
	}
	if in.Diabetes {
		xb += c.diabetes
	}
	if in.Smoker {
		xb += c.smoker
	}
	if in.UACR > 30 {
		uacr := clamp(in.UACR, 1, 5000)
		xb += 0.15 * (math.Log(uacr) - math.Log(30))
	}

	risk := 1 - math.Pow(c.s0, math.Exp(xb))
	return clamp(risk, 1e-3, 1-1e-3)
}

// eventProportion is the share of 10-year total CVD risk attributed
// to each event type before prior-event and treatment multipliers.
const (
	ProportionMI    = 0.30
	ProportionStroke = 0.25
	ProportionHF    = 0.25
)

// EventTenYearRisk scales the total 10-year CVD risk by an event's
// proportion and a prior-event multiplier, still expressed as a
// 10-year probability (the caller converts to monthly).
func EventTenYearRisk(tenYearTotal, proportion, priorEventMultiplier float64) float64 {
	return clamp(tenYearTotal*proportion*priorEventMultiplier, 0, 0.999)
}
