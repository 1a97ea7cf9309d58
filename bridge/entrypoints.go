package bridge

import (
	"hmse/kernel"
	"hmse/model"
	"hmse/psa"
	"hmse/rng"
	"hmse/simerr"
	"hmse/treatment"
)

// SimulateArm is entry point A: a single-arm simulation. Inputs
// mirror §6; the treatment tag is one of "Intervention", "MRA",
// "StandardCare" and selects the arm every patient starts on. Output
// is an aggregate result map keyed per §3 plus the five derived
// per-patient means.
func SimulateArm(patientMap map[string]any, treatmentTag string, configMap map[string]any, psaMap map[string]any, seed uint64) (map[string]any, error) {
	s, err := BuildStore(patientMap)
	if err != nil {
		return nil, err
	}
	cfg, err := BuildConfig(configMap)
	if err != nil {
		return nil, err
	}
	params, err := BuildPSAParams(psaMap)
	if err != nil {
		return nil, err
	}

	t, ok := map[string]model.Treatment{
		"Intervention": model.Intervention, "MRA": model.MRA, "StandardCare": model.StandardCare,
	}[treatmentTag]
	if !ok {
		return nil, simerr.Contractf("treatment", "unknown treatment tag %q", treatmentTag)
	}

	r := rng.New(seed)
	for i := 0; i < s.N; i++ {
		treatment.Assign(s, i, t, params, r, 0)
	}

	result := kernel.Run(s, cfg, params, r)
	return aggregateResultMap(result), nil
}

func aggregateResultMap(a *model.AggregateResult) map[string]any {
	return map[string]any{
		"total_direct_cost":        a.TotalDirectCost,
		"total_indirect_cost":      a.TotalIndirectCost,
		"total_qaly":               a.TotalQALY,
		"total_life_years":         a.TotalLifeYears,
		"mi_count":                 a.MICount,
		"any_stroke_count":         a.AnyStrokeCount,
		"ischemic_stroke_count":    a.IschemicStrokeCount,
		"hemorrhagic_stroke_count": a.HemorrhagicStrokeCount,
		"tia_count":                a.TIACount,
		"hf_count":                 a.HFCount,
		"cv_deaths":                a.CVDeaths,
		"non_cv_deaths":            a.NonCVDeaths,
		"esrd_count":               a.ESRDCount,
		"ckd4_count":               a.CKD4Count,
		"renal_deaths":             a.RenalDeaths,
		"dementia_count":           a.DementiaCount,
		"new_af_count":             a.NewAFCount,
		"sglt2_users_at_end":       a.SGLT2UsersAtEnd,
		"months_controlled":        a.MonthsControlled,
		"months_uncontrolled":      a.MonthsUncontrolled,
		"mean_costs":               a.MeanCosts(),
		"mean_indirect_costs":      a.MeanIndirectCosts(),
		"mean_total_costs":         a.MeanTotalCosts(),
		"mean_qalys":               a.MeanQALYs(),
		"mean_life_years":          a.MeanLifeYears(),
	}
}

// RunPSA is entry point B: parallel PSA. Inputs mirror §6;
// comparatorTag selects the non-intervention arm ("MRA" or
// "StandardCare"). Output is an ordered list of maps, one per input
// PSA draw, each with the six keys in §6.
func RunPSA(patientMap map[string]any, configMap map[string]any, psaMaps []map[string]any, baseSeed uint64, crn bool, comparatorTag string) ([]map[string]any, error) {
	snapshot, err := BuildStore(patientMap)
	if err != nil {
		return nil, err
	}
	cfg, err := BuildConfig(configMap)
	if err != nil {
		return nil, err
	}

	comparator, ok := map[string]model.Treatment{
		"MRA": model.MRA, "StandardCare": model.StandardCare,
	}[comparatorTag]
	if !ok {
		return nil, simerr.Contractf("comparator_treatment", "unknown treatment tag %q", comparatorTag)
	}

	params := make([]*model.PSAParams, len(psaMaps))
	for i, pm := range psaMaps {
		p, err := BuildPSAParams(pm)
		if err != nil {
			return nil, err
		}
		params[i] = p
	}

	results := psa.Run(psa.Input{
		Snapshot:            snapshot,
		Config:              cfg,
		PSAParams:           params,
		BaseSeed:            baseSeed,
		CRN:                 crn,
		ComparatorTreatment: comparator,
	})

	out := make([]map[string]any, len(results))
	for i, r := range results {
		out[i] = map[string]any{
			"ixa_mean_costs":      r.IxaMeanCosts,
			"ixa_mean_qalys":      r.IxaMeanQALYs,
			"ixa_mean_life_years": r.IxaMeanLifeYears,
			"comp_mean_costs":     r.CompMeanCosts,
			"comp_mean_qalys":     r.CompMeanQALYs,
			"comp_mean_life_years": r.CompMeanLifeYears,
		}
	}
	return out, nil
}
