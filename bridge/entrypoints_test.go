package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmse/bridge"
)

func TestSimulateArmReturnsExpectedKeys(t *testing.T) {
	result, err := bridge.SimulateArm(validPatientMap(10), "Intervention", validConfigMap(), validPSAMap(), 42)
	require.NoError(t, err)
	for _, k := range []string{"mean_costs", "mean_qalys", "mean_life_years", "cv_deaths", "non_cv_deaths", "mi_count"} {
		_, ok := result[k]
		assert.True(t, ok, "missing key %q", k)
	}
}

func TestSimulateArmRejectsUnknownTreatmentTag(t *testing.T) {
	_, err := bridge.SimulateArm(validPatientMap(5), "NotATreatment", validConfigMap(), validPSAMap(), 1)
	require.Error(t, err)
}

func TestSimulateArmPropagatesContractViolationFromPatientMap(t *testing.T) {
	m := validPatientMap(5)
	delete(m, "egfr")
	_, err := bridge.SimulateArm(m, "StandardCare", validConfigMap(), validPSAMap(), 1)
	require.Error(t, err)
}

func TestSimulateArmIsDeterministicForSameSeed(t *testing.T) {
	a, err := bridge.SimulateArm(validPatientMap(15), "MRA", validConfigMap(), validPSAMap(), 99)
	require.NoError(t, err)
	b, err := bridge.SimulateArm(validPatientMap(15), "MRA", validConfigMap(), validPSAMap(), 99)
	require.NoError(t, err)
	assert.Equal(t, a["mean_costs"], b["mean_costs"])
	assert.Equal(t, a["cv_deaths"], b["cv_deaths"])
}

func TestRunPSAReturnsOneMapPerDraw(t *testing.T) {
	psaMaps := []map[string]any{validPSAMap(), validPSAMap(), validPSAMap()}
	results, err := bridge.RunPSA(validPatientMap(10), validConfigMap(), psaMaps, 7, true, "StandardCare")
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		for _, k := range []string{"ixa_mean_costs", "ixa_mean_qalys", "ixa_mean_life_years", "comp_mean_costs", "comp_mean_qalys", "comp_mean_life_years"} {
			_, ok := r[k]
			assert.True(t, ok, "missing key %q", k)
		}
	}
}

func TestRunPSARejectsUnknownComparatorTag(t *testing.T) {
	_, err := bridge.RunPSA(validPatientMap(5), validConfigMap(), []map[string]any{validPSAMap()}, 1, true, "NotATreatment")
	require.Error(t, err)
}

func TestRunPSAPropagatesConfigContractViolation(t *testing.T) {
	cfg := validConfigMap()
	cfg["discount_rate"] = 5.0
	_, err := bridge.RunPSA(validPatientMap(5), cfg, []map[string]any{validPSAMap()}, 1, true, "MRA")
	require.Error(t, err)
}

func TestRunPSAPropagatesPSAParamContractViolation(t *testing.T) {
	bad := validPSAMap()
	delete(bad, "cost_mi_acute")
	_, err := bridge.RunPSA(validPatientMap(5), validConfigMap(), []map[string]any{validPSAMap(), bad}, 1, true, "MRA")
	require.Error(t, err)
}

func TestRunPSAWithZeroDrawsReturnsEmptySlice(t *testing.T) {
	results, err := bridge.RunPSA(validPatientMap(5), validConfigMap(), nil, 1, true, "MRA")
	require.NoError(t, err)
	assert.Empty(t, results)
}
