// Package bridge marshals the opaque parameter maps described in §6
// into the typed structs the rest of the core consumes, and the
// typed results back into the map schema the caller expects. This is
// the one place in the repo that panics gracefully: every malformed
// input becomes a *simerr.Error instead of an index-out-of-range
// panic, because this is the library boundary (§7.1).
package bridge

import (
	"math"

	"hmse/model"
	"hmse/simerr"
)

func floatCol(m map[string]any, key string, n int) ([]float64, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return nil, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.([]float64)
	if !ok {
		return nil, simerr.Contractf(key, "expected []float64, got %T", raw)
	}
	if len(v) != n {
		return nil, simerr.Contractf(key, "length %d does not match N=%d", len(v), n)
	}
	return v, nil
}

func boolCol(m map[string]any, key string, n int) ([]bool, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return nil, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.([]bool)
	if !ok {
		return nil, simerr.Contractf(key, "expected []bool, got %T", raw)
	}
	if len(v) != n {
		return nil, simerr.Contractf(key, "length %d does not match N=%d", len(v), n)
	}
	return v, nil
}

func intCol(m map[string]any, key string, n int) ([]int, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return nil, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.([]int)
	if !ok {
		return nil, simerr.Contractf(key, "expected []int, got %T", raw)
	}
	if len(v) != n {
		return nil, simerr.Contractf(key, "length %d does not match N=%d", len(v), n)
	}
	return v, nil
}

func stringCol(m map[string]any, key string, n int) ([]string, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return nil, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.([]string)
	if !ok {
		return nil, simerr.Contractf(key, "expected []string, got %T", raw)
	}
	if len(v) != n {
		return nil, simerr.Contractf(key, "length %d does not match N=%d", len(v), n)
	}
	return v, nil
}

func sexCol(m map[string]any, key string, n int) ([]model.Sex, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	out := make([]model.Sex, n)
	for i, t := range tags {
		switch t {
		case "Male":
			out[i] = model.Male
		case "Female":
			out[i] = model.Female
		default:
			return nil, simerr.Contractf(key, "patient %d: unknown sex tag %q", i, t)
		}
	}
	return out, nil
}

func dippingCol(m map[string]any, key string, n int) ([]model.DippingStatus, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	out := make([]model.DippingStatus, n)
	for i, t := range tags {
		switch t {
		case "Normal":
			out[i] = model.NormalDipper
		case "NonDipper":
			out[i] = model.NonDipper
		case "ReverseDipper":
			out[i] = model.ReverseDipper
		default:
			return nil, simerr.Contractf(key, "patient %d: unknown dipping tag %q", i, t)
		}
	}
	return out, nil
}

func cardiacCol(m map[string]any, key string, n int) ([]model.CardiacState, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	names := map[string]model.CardiacState{
		"NoAcuteEvent": model.NoAcuteEvent, "AcuteMI": model.AcuteMI, "PostMI": model.PostMI,
		"AcuteIschemicStroke": model.AcuteIschemicStroke, "AcuteHemorrhagicStroke": model.AcuteHemorrhagicStroke,
		"PostStroke": model.PostStroke, "TIA": model.TIA, "AcuteHF": model.AcuteHF,
		"ChronicHF": model.ChronicHF, "CVDeath": model.CVDeath, "NonCVDeath": model.NonCVDeath,
	}
	out := make([]model.CardiacState, n)
	for i, t := range tags {
		v, ok := names[t]
		if !ok {
			return nil, simerr.Contractf(key, "patient %d: unknown cardiac state tag %q", i, t)
		}
		out[i] = v
	}
	return out, nil
}

func renalCol(m map[string]any, key string, n int) ([]model.RenalState, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	names := map[string]model.RenalState{
		"CKD1-2": model.CKD1_2, "CKD3a": model.CKD3a, "CKD3b": model.CKD3b,
		"CKD4": model.CKD4, "ESRD": model.ESRD, "RenalDeath": model.RenalDeath,
	}
	out := make([]model.RenalState, n)
	for i, t := range tags {
		v, ok := names[t]
		if !ok {
			return nil, simerr.Contractf(key, "patient %d: unknown renal state tag %q", i, t)
		}
		out[i] = v
	}
	return out, nil
}

func neuroCol(m map[string]any, key string, n int) ([]model.NeuroState, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	names := map[string]model.NeuroState{"Normal": model.NeuroNormal, "MCI": model.MCI, "Dementia": model.Dementia}
	out := make([]model.NeuroState, n)
	for i, t := range tags {
		v, ok := names[t]
		if !ok {
			return nil, simerr.Contractf(key, "patient %d: unknown neuro state tag %q", i, t)
		}
		out[i] = v
	}
	return out, nil
}

func treatmentCol(m map[string]any, key string, n int) ([]model.Treatment, *simerr.Error) {
	tags, err := stringCol(m, key, n)
	if err != nil {
		return nil, err
	}
	names := map[string]model.Treatment{"Intervention": model.Intervention, "MRA": model.MRA, "StandardCare": model.StandardCare}
	out := make([]model.Treatment, n)
	for i, t := range tags {
		v, ok := names[t]
		if !ok {
			return nil, simerr.Contractf(key, "patient %d: unknown treatment tag %q", i, t)
		}
		out[i] = v
	}
	return out, nil
}

func neverAwareFloatCol(m map[string]any, key string, n int) ([]float64, *simerr.Error) {
	v, err := floatCol(m, key, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i, x := range v {
		if math.IsNaN(x) {
			return nil, simerr.Contractf(key, "patient %d: NaN is not a valid time-since-event encoding, use the never sentinel", i)
		}
		out[i] = x
	}
	return out, nil
}

// BuildStore parses the patient map (§6, §3) into a *model.Store,
// returning a *simerr.Error on any contract violation.
func BuildStore(m map[string]any) (*model.Store, *simerr.Error) {
	nRaw, ok := m["n"]
	if !ok {
		return nil, simerr.Contract("n", "missing required key")
	}
	n, ok := nRaw.(int)
	if !ok || n <= 0 {
		return nil, simerr.Contractf("n", "expected positive int, got %v", nRaw)
	}

	s := model.NewStore(n)
	var err *simerr.Error

	assign := func(f func() *simerr.Error) {
		if err != nil {
			return
		}
		err = f()
	}

	assign(func() *simerr.Error { v, e := floatCol(m, "age", n); s.Age = v; return e })
	assign(func() *simerr.Error { v, e := sexCol(m, "sex", n); s.Sex = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "baseline_sbp", n); s.BaselineSBP = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "baseline_dbp", n); s.BaselineDBP = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "current_sbp", n); s.CurrentSBP = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "current_dbp", n); s.CurrentDBP = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "true_mean_sbp", n); s.TrueMeanSBP = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "white_coat_offset", n); s.WhiteCoatOff = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "egfr", n); s.EGFR = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "uacr", n); s.UACR = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "total_cholesterol", n); s.TotalCholesterol = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "hdl", n); s.HDL = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "diabetes", n); s.Diabetes = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "smoker", n); s.Smoker = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "heart_failure", n); s.HeartFailure = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "atrial_fibrillation", n); s.AtrialFibrillation = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "on_sglt2i", n); s.OnSGLT2i = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "primary_aldosteronism", n); s.PrimaryAldosteronism = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "renal_artery_stenosis", n); s.RenalArteryStenosis = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "pheochromocytoma", n); s.Pheochromocytoma = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "obstructive_sleep_apnea", n); s.ObstructiveSleepApnea = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "bmi", n); s.BMI = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "serum_k", n); s.SerumK = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "hyperkalemia_flag", n); s.HyperkalemiaFlag = v; return e })
	assign(func() *simerr.Error { v, e := intCol(m, "hyperkalemia_history", n); s.HyperkalemiaHistory = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "on_k_binder", n); s.OnKBinder = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "mra_dose_reduced", n); s.MRADoseReduced = v; return e })
	assign(func() *simerr.Error { v, e := boolCol(m, "is_adherent", n); s.IsAdherent = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "sdi", n); s.SDI = v; return e })
	assign(func() *simerr.Error { v, e := dippingCol(m, "dipping", n); s.Dipping = v; return e })
	assign(func() *simerr.Error {
		v, e := floatCol(m, "time_since_adherence_change", n)
		s.TimeSinceAdherenceChange = v
		return e
	})
	assign(func() *simerr.Error { v, e := cardiacCol(m, "cardiac_state", n); s.Cardiac = v; return e })
	assign(func() *simerr.Error { v, e := renalCol(m, "renal_state", n); s.Renal = v; return e })
	assign(func() *simerr.Error { v, e := neuroCol(m, "neuro_state", n); s.Neuro = v; return e })
	assign(func() *simerr.Error { v, e := treatmentCol(m, "treatment", n); s.Treatment = v; return e })
	assign(func() *simerr.Error { v, e := intCol(m, "prior_mi_count", n); s.PriorMICount = v; return e })
	assign(func() *simerr.Error {
		v, e := intCol(m, "prior_any_stroke_count", n)
		s.PriorAnyStrokeCount = v
		return e
	})
	assign(func() *simerr.Error {
		v, e := intCol(m, "prior_ischemic_stroke_count", n)
		s.PriorIschemicStrokeCount = v
		return e
	})
	assign(func() *simerr.Error {
		v, e := intCol(m, "prior_hemorrhagic_stroke_count", n)
		s.PriorHemorrhagicStroke = v
		return e
	})
	assign(func() *simerr.Error { v, e := intCol(m, "prior_tia_count", n); s.PriorTIACount = v; return e })
	assign(func() *simerr.Error {
		v, e := neverAwareFloatCol(m, "time_since_last_cv_event", n)
		s.TimeSinceLastCVEvent = v
		return e
	})
	assign(func() *simerr.Error {
		v, e := neverAwareFloatCol(m, "time_since_last_tia", n)
		s.TimeSinceLastTIA = v
		return e
	})
	assign(func() *simerr.Error { v, e := floatCol(m, "time_in_simulation", n); s.TimeInSimulation = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "time_in_state", n); s.TimeInState = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "mod_mi", n); s.ModMI = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "mod_stroke", n); s.ModStroke = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "mod_hf", n); s.ModHF = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "mod_esrd", n); s.ModESRD = v; return e })
	assign(func() *simerr.Error { v, e := floatCol(m, "mod_death", n); s.ModDeath = v; return e })
	assign(func() *simerr.Error {
		v, e := floatCol(m, "treatment_response_mod", n)
		s.TreatmentResponseMod = v
		return e
	})
	assign(func() *simerr.Error {
		v, e := intCol(m, "num_antihypertensives", n)
		s.NumAntihypertensives = v
		return e
	})
	assign(func() *simerr.Error { v, e := boolCol(m, "use_kfre_model", n); s.UseKFREModel = v; return e })

	if err != nil {
		return nil, err
	}

	if verr := model.ValidateStore(s); verr != nil {
		return nil, verr
	}
	return s, nil
}

func getFloat(m map[string]any, key string) (float64, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return 0, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, simerr.Contractf(key, "expected float64, got %T", raw)
	}
	return v, nil
}

func getInt(m map[string]any, key string) (int, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return 0, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.(int)
	if !ok {
		return 0, simerr.Contractf(key, "expected int, got %T", raw)
	}
	return v, nil
}

func getBool(m map[string]any, key string) (bool, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return false, simerr.Contract(key, "missing required key")
	}
	v, ok := raw.(bool)
	if !ok {
		return false, simerr.Contractf(key, "expected bool, got %T", raw)
	}
	return v, nil
}

func getString(m map[string]any, key string) (string, *simerr.Error) {
	raw, ok := m[key]
	if !ok {
		return "", simerr.Contract(key, "missing required key")
	}
	v, ok := raw.(string)
	if !ok {
		return "", simerr.Contractf(key, "expected string, got %T", raw)
	}
	return v, nil
}

// BuildConfig parses the config map (§6).
func BuildConfig(m map[string]any) (*model.Config, *simerr.Error) {
	horizon, err := getInt(m, "time_horizon_months")
	if err != nil {
		return nil, err
	}
	cycleLen, err := getFloat(m, "cycle_length_months")
	if err != nil {
		return nil, err
	}
	discountRate, err := getFloat(m, "discount_rate")
	if err != nil {
		return nil, err
	}
	costPerspective, err := getString(m, "cost_perspective")
	if err != nil {
		return nil, err
	}
	halfCycle, err := getBool(m, "use_half_cycle_correction")
	if err != nil {
		return nil, err
	}
	competingRisks, err := getBool(m, "use_competing_risks")
	if err != nil {
		return nil, err
	}
	dynamicStroke, err := getBool(m, "use_dynamic_stroke_subtypes")
	if err != nil {
		return nil, err
	}
	kfre, err := getBool(m, "use_kfre_model")
	if err != nil {
		return nil, err
	}
	lifeTableCountry, err := getString(m, "life_table_country")
	if err != nil {
		return nil, err
	}
	econRaw, err := getInt(m, "economic_perspective")
	if err != nil {
		return nil, err
	}
	if econRaw != 0 && econRaw != 1 {
		return nil, simerr.Contractf("economic_perspective", "must be 0 or 1, got %d", econRaw)
	}

	cfg := &model.Config{
		TimeHorizonMonths:        horizon,
		CycleLengthMonths:        cycleLen,
		DiscountRate:             discountRate,
		CostPerspective:          costPerspective,
		UseHalfCycleCorrection:   halfCycle,
		UseCompetingRisks:        competingRisks,
		UseDynamicStrokeSubtypes: dynamicStroke,
		UseKFREModel:             kfre,
		LifeTableCountry:         lifeTableCountry,
		EconomicPerspective:      model.EconomicPerspective(econRaw),
	}
	if verr := model.ValidateConfig(cfg); verr != nil {
		return nil, verr
	}
	return cfg, nil
}

// BuildPSAParams parses one PSA map (§6).
func BuildPSAParams(m map[string]any) (*model.PSAParams, *simerr.Error) {
	keys := []string{
		"ixa_sbp_mean", "ixa_sbp_sd", "spiro_sbp_mean", "spiro_sbp_sd",
		"discontinuation_rate_ixa", "discontinuation_rate_spiro",
		"cost_mi_acute", "cost_ischemic_stroke_acute", "cost_hemorrhagic_stroke_acute",
		"cost_hf_acute", "cost_esrd_annual", "cost_post_stroke_annual", "cost_hf_annual",
		"cost_ixa_monthly",
		"disutility_post_mi", "disutility_post_stroke", "disutility_chronic_hf",
		"disutility_esrd", "disutility_dementia",
	}
	vals := make(map[string]float64, len(keys))
	for _, k := range keys {
		v, err := getFloat(m, k)
		if err != nil {
			return nil, err
		}
		vals[k] = v
	}
	return &model.PSAParams{
		IxaSBPMean:                 vals["ixa_sbp_mean"],
		IxaSBPSD:                   vals["ixa_sbp_sd"],
		SpiroSBPMean:               vals["spiro_sbp_mean"],
		SpiroSBPSD:                 vals["spiro_sbp_sd"],
		DiscontinuationRateIxa:     vals["discontinuation_rate_ixa"],
		DiscontinuationRateSpiro:   vals["discontinuation_rate_spiro"],
		CostMIAcute:                vals["cost_mi_acute"],
		CostIschemicStrokeAcute:    vals["cost_ischemic_stroke_acute"],
		CostHemorrhagicStrokeAcute: vals["cost_hemorrhagic_stroke_acute"],
		CostHFAcute:                vals["cost_hf_acute"],
		CostESRDAnnual:             vals["cost_esrd_annual"],
		CostPostStrokeAnnual:       vals["cost_post_stroke_annual"],
		CostHFAnnual:               vals["cost_hf_annual"],
		CostIxaMonthly:             vals["cost_ixa_monthly"],
		DisutilityPostMI:           vals["disutility_post_mi"],
		DisutilityPostStroke:       vals["disutility_post_stroke"],
		DisutilityChronicHF:        vals["disutility_chronic_hf"],
		DisutilityESRD:             vals["disutility_esrd"],
		DisutilityDementia:         vals["disutility_dementia"],
	}, nil
}
