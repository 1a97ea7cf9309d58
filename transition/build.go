package transition

import (
	"hmse/model"
	"hmse/risk"
)

// BuildContext bundles every covariate the chronic-state probability
// assembly in §4.2 reads. All risk-driving covariates use
// true_mean_sbp, not office SBP.
type BuildContext struct {
	Age                  float64
	Female               bool
	TrueMeanSBP          float64
	EGFR                 float64
	TotalCholesterol     float64
	HDL                  float64
	BMI                  float64
	Diabetes             bool
	Smoker               bool
	BPTreated            bool
	UACR                 float64
	HasAF                bool
	HasHeartFailure      bool
	OnSGLT2i             bool
	Cardiac              model.CardiacState
	TimeInStateMonths    float64
	PriorMI              bool
	PriorAnyStroke       bool
	PriorTIA             bool
	Dipping              model.DippingStatus
	TreatmentResponseMod float64
	ModMI                float64
	ModStroke            float64
	ModHF                float64
	ModDeath             float64
	RenalESRD            bool
	UseDynamicStrokeSubtypes bool
	UseKFREModel         bool
	LifeTable            *risk.LifeTable
}

// BuildChronic fills p with the seven cause-specific monthly
// probabilities for a patient not currently in an acute cardiac
// state, per §4.2.
func BuildChronic(p *Probs, ctx BuildContext) {
	p.Reset()

	miMultiplier := 1.0
	if ctx.PriorMI {
		miMultiplier = 2.5
	}
	strokeMultiplier := 1.0
	if ctx.PriorAnyStroke {
		strokeMultiplier = 3.0
	}
	if ctx.PriorTIA {
		strokeMultiplier *= 2.0
	}

	tenYearCVD := risk.TenYearCVDRisk(risk.PreventInputs{
		Age:              ctx.Age,
		SBP:              ctx.TrueMeanSBP,
		EGFR:             ctx.EGFR,
		TotalCholesterol: ctx.TotalCholesterol,
		HDL:              ctx.HDL,
		BMI:              ctx.BMI,
		Diabetes:         ctx.Diabetes,
		Smoker:           ctx.Smoker,
		BPTreated:        ctx.BPTreated,
		UACR:             ctx.UACR,
	}, ctx.Female)

	dippingMult := ctx.Dipping.Multiplier()

	// MI.
	miTenYear := risk.EventTenYearRisk(tenYearCVD, risk.ProportionMI, miMultiplier)
	miFactor := ctx.ModMI * dippingMult * TreatmentRiskFactor(ctx.TreatmentResponseMod, TreatmentCoefMI)
	p.MI = clampProb(risk.MonthlyFromTenYear(miTenYear) * miFactor)

	// Stroke (total, then split).
	strokeDippingMult := 1.0
	if dippingMult > 1.0 {
		strokeDippingMult = dippingMult * 1.1
	}
	strokeTenYear := risk.EventTenYearRisk(tenYearCVD, risk.ProportionStroke, strokeMultiplier)
	strokeFactor := ctx.ModStroke * strokeDippingMult * TreatmentRiskFactor(ctx.TreatmentResponseMod, TreatmentCoefStroke)
	totalStrokeMonthly := clampProb(risk.MonthlyFromTenYear(strokeTenYear) * strokeFactor)

	hemorrhagicFraction := StrokeSubtypeSplit(ctx.UseDynamicStrokeSubtypes, ctx.Age, ctx.TrueMeanSBP, ctx.HasAF, ctx.PriorTIA)
	p.HemorrhagicStroke = totalStrokeMonthly * hemorrhagicFraction
	p.IschemicStroke = totalStrokeMonthly * (1 - hemorrhagicFraction)

	// TIA.
	tiaMult := 1.0
	if ctx.HasAF {
		tiaMult = 1.5
	}
	p.TIA = clampProb(0.33 * p.IschemicStroke * tiaMult)

	// HF, only if not already in HF.
	if ctx.Cardiac != model.ChronicHF {
		hfTenYear := risk.EventTenYearRisk(tenYearCVD, risk.ProportionHF, 1.0)
		hfFactor := ctx.ModHF * TreatmentRiskFactor(ctx.TreatmentResponseMod, TreatmentCoefHF)
		if ctx.OnSGLT2i {
			hfFactor *= 0.70
		}
		p.HF = clampProb(risk.MonthlyFromTenYear(hfTenYear) * hfFactor)
	}

	// CVDeath.
	cvAnnual := CVDeathAnnualBase(ctx.Cardiac, ctx.TimeInStateMonths)
	if ctx.HasHeartFailure && ctx.Cardiac != model.ChronicHF {
		cvAnnual += 0.03
	}
	if ctx.RenalESRD {
		cvAnnual += 0.6 * risk.ESRDMortalityBaseAnnual
	}
	cvAnnual *= ctx.ModDeath * TreatmentRiskFactor(ctx.TreatmentResponseMod, TreatmentCoefDeath)
	if cvAnnual > 0.20 {
		cvAnnual = 0.20
	}
	p.CVDeath = risk.MonthlyFromAnnual(cvAnnual)

	// NonCVDeath.
	p.NonCVDeath = ctx.LifeTable.MonthlyMortality(ctx.Age)
}

func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 0.999 {
		return 0.999
	}
	return p
}
