package bridge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmse/bridge"
	"hmse/simerr"
)

func validPatientMap(n int) map[string]any {
	f := func(v float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out
	}
	b := func(v bool) []bool {
		out := make([]bool, n)
		for i := range out {
			out[i] = v
		}
		return out
	}
	i := func(v int) []int {
		out := make([]int, n)
		for k := range out {
			out[k] = v
		}
		return out
	}
	str := func(v string) []string {
		out := make([]string, n)
		for k := range out {
			out[k] = v
		}
		return out
	}

	return map[string]any{
		"n":                              n,
		"age":                            f(60),
		"sex":                            str("Male"),
		"baseline_sbp":                   f(140),
		"baseline_dbp":                   f(84),
		"current_sbp":                    f(140),
		"current_dbp":                    f(84),
		"true_mean_sbp":                  f(138),
		"white_coat_offset":              f(2),
		"egfr":                           f(70),
		"uacr":                           f(10),
		"total_cholesterol":              f(190),
		"hdl":                            f(50),
		"diabetes":                       b(false),
		"smoker":                         b(false),
		"heart_failure":                  b(false),
		"atrial_fibrillation":            b(false),
		"on_sglt2i":                      b(false),
		"primary_aldosteronism":          b(false),
		"renal_artery_stenosis":          b(false),
		"pheochromocytoma":               b(false),
		"obstructive_sleep_apnea":        b(false),
		"bmi":                            f(27),
		"serum_k":                        f(4.2),
		"hyperkalemia_flag":              b(false),
		"hyperkalemia_history":           i(0),
		"on_k_binder":                    b(false),
		"mra_dose_reduced":               b(false),
		"is_adherent":                    b(true),
		"sdi":                            f(50),
		"dipping":                        str("Normal"),
		"time_since_adherence_change":    f(0),
		"cardiac_state":                  str("NoAcuteEvent"),
		"renal_state":                    str("CKD1-2"),
		"neuro_state":                    str("Normal"),
		"treatment":                      str("StandardCare"),
		"prior_mi_count":                 i(0),
		"prior_any_stroke_count":         i(0),
		"prior_ischemic_stroke_count":    i(0),
		"prior_hemorrhagic_stroke_count": i(0),
		"prior_tia_count":                i(0),
		"time_since_last_cv_event":       f(math.Inf(1)),
		"time_since_last_tia":            f(math.Inf(1)),
		"time_in_simulation":             f(0),
		"time_in_state":                  f(0),
		"mod_mi":                         f(1),
		"mod_stroke":                     f(1),
		"mod_hf":                         f(1),
		"mod_esrd":                       f(1),
		"mod_death":                      f(1),
		"treatment_response_mod":         f(1),
		"num_antihypertensives":          i(1),
		"use_kfre_model":                 b(true),
	}
}

func validConfigMap() map[string]any {
	return map[string]any{
		"time_horizon_months":         120,
		"cycle_length_months":         1.0,
		"discount_rate":               0.03,
		"cost_perspective":            "US",
		"use_half_cycle_correction":   true,
		"use_competing_risks":         true,
		"use_dynamic_stroke_subtypes": true,
		"use_kfre_model":              true,
		"life_table_country":          "US",
		"economic_perspective":        0,
	}
}

func validPSAMap() map[string]any {
	return map[string]any{
		"ixa_sbp_mean":                  20.0,
		"ixa_sbp_sd":                    4.0,
		"spiro_sbp_mean":                14.0,
		"spiro_sbp_sd":                  4.0,
		"discontinuation_rate_ixa":      0.10,
		"discontinuation_rate_spiro":    0.18,
		"cost_mi_acute":                 18000.0,
		"cost_ischemic_stroke_acute":    22000.0,
		"cost_hemorrhagic_stroke_acute": 38000.0,
		"cost_hf_acute":                 16000.0,
		"cost_esrd_annual":              70000.0,
		"cost_post_stroke_annual":       6000.0,
		"cost_hf_annual":                4500.0,
		"cost_ixa_monthly":              55.0,
		"disutility_post_mi":            0.08,
		"disutility_post_stroke":        0.15,
		"disutility_chronic_hf":         0.12,
		"disutility_esrd":               0.20,
		"disutility_dementia":           0.30,
	}
}

func TestBuildStoreAcceptsValidMap(t *testing.T) {
	s, err := bridge.BuildStore(validPatientMap(5))
	require.Nil(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 5, s.N)
}

func TestBuildStoreRejectsMissingKey(t *testing.T) {
	m := validPatientMap(3)
	delete(m, "age")
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
	assert.True(t, simerr.Is(err, simerr.ContractViolation))
	assert.Equal(t, "age", err.Key)
}

func TestBuildStoreRejectsWrongType(t *testing.T) {
	m := validPatientMap(3)
	m["age"] = "not a slice"
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
	assert.True(t, simerr.Is(err, simerr.ContractViolation))
}

func TestBuildStoreRejectsLengthMismatch(t *testing.T) {
	m := validPatientMap(3)
	m["age"] = []float64{60, 61}
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "length")
}

func TestBuildStoreRejectsUnknownSexTag(t *testing.T) {
	m := validPatientMap(2)
	m["sex"] = []string{"Male", "Alien"}
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "unknown sex tag")
}

func TestBuildStoreRejectsNaNTimeSinceEvent(t *testing.T) {
	m := validPatientMap(1)
	m["time_since_last_cv_event"] = []float64{math.NaN()}
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "NaN")
}

func TestBuildStoreRejectsOutOfRangeSerumK(t *testing.T) {
	m := validPatientMap(1)
	m["serum_k"] = []float64{9.0}
	_, err := bridge.BuildStore(m)
	require.NotNil(t, err)
}

func TestBuildConfigAcceptsValidMap(t *testing.T) {
	cfg, err := bridge.BuildConfig(validConfigMap())
	require.Nil(t, err)
	assert.Equal(t, 120, cfg.TimeHorizonMonths)
}

func TestBuildConfigRejectsInvalidEconomicPerspective(t *testing.T) {
	m := validConfigMap()
	m["economic_perspective"] = 7
	_, err := bridge.BuildConfig(m)
	require.NotNil(t, err)
	assert.Equal(t, "economic_perspective", err.Key)
}

func TestBuildConfigRejectsNegativeDiscountRate(t *testing.T) {
	m := validConfigMap()
	m["discount_rate"] = -0.5
	_, err := bridge.BuildConfig(m)
	require.NotNil(t, err)
}

func TestBuildPSAParamsAcceptsValidMap(t *testing.T) {
	p, err := bridge.BuildPSAParams(validPSAMap())
	require.Nil(t, err)
	assert.Equal(t, 20.0, p.IxaSBPMean)
}

func TestBuildPSAParamsRejectsMissingKey(t *testing.T) {
	m := validPSAMap()
	delete(m, "ixa_sbp_mean")
	_, err := bridge.BuildPSAParams(m)
	require.NotNil(t, err)
	assert.Equal(t, "ixa_sbp_mean", err.Key)
}
