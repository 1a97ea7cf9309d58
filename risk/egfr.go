package risk

// EGFRDeclineInputs bundles the covariates for the annual eGFR
// decline-rate model.
type EGFRDeclineInputs struct {
	Age          float64
	EGFR         float64
	UACR         float64
	SBP          float64
	Diabetes     bool
	OnSGLT2i     bool
	UseKFREModel bool
	KFRE2yr      float64 // only consulted when UseKFREModel && EGFR<60.
}

// AnnualEGFRDecline returns the annual eGFR decline rate in
// mL/min/1.73m^2/yr, capped at 15.0, per §4.1.
func AnnualEGFRDecline(in EGFRDeclineInputs) float64 {
	var base float64
	if in.EGFR < 60 && in.UseKFREModel {
		switch {
		case in.KFRE2yr > 0.30:
			base = 5.0
		case in.KFRE2yr > 0.15:
			base = 3.5
		case in.KFRE2yr > 0.05:
			base = 2.0
		default:
			base = 1.0
		}
	} else {
		switch {
		case in.Age < 40:
			base = 0
		case in.Age < 65:
			base = 1.0
		default:
			base = 1.5
		}
		switch {
		case in.UACR >= 300:
			base += 2.0
		case in.UACR >= 30:
			base += 0.8
		}
	}

	if in.Diabetes {
		base *= 1.5
	}
	if in.OnSGLT2i {
		base *= 0.61
	}

	if in.SBP > 130 {
		base += 0.08 * (in.SBP - 130) / 10
	}

	if base > 15.0 {
		base = 15.0
	}
	if base < 0 {
		base = 0
	}
	return base
}
