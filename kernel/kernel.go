// Package kernel implements the monthly simulation loop: for each
// cycle, for each alive patient, the fixed 17-step order from §4.5
// that ties together the transition engine, treatment machinery,
// costs, and utilities.
package kernel

import (
	"hmse/costs"
	"hmse/model"
	"hmse/risk"
	"hmse/rng"
	"hmse/transition"
	"hmse/treatment"
)

// Run executes the full horizon for one patient store (one arm, one
// replication) and returns the aggregate result. s is mutated in
// place; callers reset it via Store.CloneFrom before each replication.
func Run(s *model.Store, cfg *model.Config, psa *model.PSAParams, r *rng.Source) *model.AggregateResult {
	lifeTables := [2]*risk.LifeTable{
		risk.LifeTableFor(cfg.LifeTableCountry, false),
		risk.LifeTableFor(cfg.LifeTableCountry, true),
	}

	var probs transition.Probs
	cycles := int(float64(cfg.TimeHorizonMonths) / cfg.CycleLengthMonths)

	for cycle := 0; cycle < cycles; cycle++ {
		for i := 0; i < s.N; i++ {
			if !s.IsAlive(i) {
				continue
			}
			runPatientCycle(s, i, cfg, psa, r, lifeTables, &probs)
		}
	}

	return model.Aggregate(s)
}

func runPatientCycle(s *model.Store, i int, cfg *model.Config, psa *model.PSAParams, r *rng.Source, lifeTables [2]*risk.LifeTable, probs *transition.Probs) {
	nowMonth := s.TimeInSimulation[i]
	discFactor := costs.Factor(nowMonth, cfg.CycleLengthMonths, cfg.DiscountRate, cfg.UseHalfCycleCorrection)

	// Step 1: adherence change.
	if treatment.CheckAdherence(s, i, r, nowMonth) {
		treatment.RefreshActiveEffect(s, i)
	}

	// Step 2: quarterly MRA hyperkalemia check.
	_, hkCost := treatment.CheckHyperkalemia(s, i, psa, r, nowMonth)
	s.CumulativeDiscountedCost[i] += hkCost * discFactor

	// Step 3: neuro progression.
	if treatment.CheckNeuroProgression(s, i, r) {
		s.NewDementiaCount[i]++
	}

	// Step 4: AF onset.
	if treatment.CheckAFOnset(s, i, r) {
		s.NewAFCount[i]++
		s.CumulativeDiscountedCost[i] += costs.AFOnsetCost() * discFactor
	}

	// Step 5: build transition probabilities and sample an event.
	lifeTable := lifeTables[s.Sex[i]]
	if s.Cardiac[i].IsAcute() {
		transition.BuildAcute(probs, s.Cardiac[i])
	} else {
		transition.BuildChronic(probs, buildContext(s, i, cfg, lifeTable))
	}
	transition.Compose(probs, cfg.UseCompetingRisks)

	cause := transition.Sample(probs, r.Float64())
	recordEvent(s, i, cause, psa, discFactor)

	// Step 6: died during step 5.
	if !s.IsAlive(i) {
		return
	}

	// Step 7: TIA to stroke conversion.
	if treatment.CheckTIAToStroke(s, i, r) {
		s.CumulativeDiscountedCost[i] += psa.CostIschemicStrokeAcute * discFactor
		s.CumulativeDiscountedIndirectCost[i] += costs.IndirectAcuteCost(model.AcuteIschemicStroke, s.Age[i]) * discFactor
	}

	// Step 8: died during step 7 (never happens by construction, kept
	// as a guard mirroring the fixed step order).
	if !s.IsAlive(i) {
		return
	}

	// Step 9: monthly state management + drug cost.
	mgmtCost := costs.MonthlyStateManagementCost(s.Cardiac[i], s.CurrentSBP[i], s.AtrialFibrillation[i], s.Renal[i], psa.CostPostStrokeAnnual, psa.CostHFAnnual, psa.CostESRDAnnual)
	drugCost := costs.DrugCostMonthly(s.Treatment[i], s.OnSGLT2i[i], psa.CostIxaMonthly)
	s.CumulativeDiscountedCost[i] += (mgmtCost + drugCost) * discFactor

	// Step 10: societal productivity loss.
	if cfg.EconomicPerspective == model.Societal {
		s.CumulativeDiscountedIndirectCost[i] += costs.MonthlyProductivityLoss(s.Cardiac[i], s.Age[i]) * discFactor
	}

	// Step 11: utility and QALY.
	utility := costs.MonthlyUtility(costs.UtilityInputs{
		Age:                  s.Age[i],
		Cardiac:              s.Cardiac[i],
		CurrentSBP:           s.CurrentSBP[i],
		Renal:                s.Renal[i],
		Neuro:                s.Neuro[i],
		Diabetes:             s.Diabetes[i],
		AF:                   s.AtrialFibrillation[i],
		Hyperkalemia:         s.HyperkalemiaFlag[i],
		NumAntihypertensives: s.NumAntihypertensives[i],
	}, psa)
	s.CumulativeDiscountedQALY[i] += utility * discFactor

	// Step 12: life-years.
	s.LifeYears[i] += 1.0 / 12

	// Step 13: controlled/uncontrolled time.
	if s.CurrentSBP[i] < 140 {
		s.MonthsControlled[i] += 1.0 / 12
	} else {
		s.MonthsUncontrolled[i] += 1.0 / 12
	}

	// Step 14: SBP update.
	treatment.UpdateSBP(s, i, r)

	// Step 15: time advance.
	treatment.AdvanceTime(s, i, cfg.CycleLengthMonths, cfg.UseKFREModel, r)
	if s.Renal[i] == model.CKD4 {
		s.CKD4Count[i] = 1
	}

	// Step 16: ESRD non-CV mortality.
	if s.Renal[i] == model.ESRD {
		s.ESRDCount[i] = 1
		if treatment.ESRDMortalitySample(s, i, r) {
			return
		}
	}

	// Step 17: discontinuation check.
	treatment.CheckDiscontinuation(s, i, psa, r, s.TimeInSimulation[i])
}

func buildContext(s *model.Store, i int, cfg *model.Config, lifeTable *risk.LifeTable) transition.BuildContext {
	return transition.BuildContext{
		Age:                      s.Age[i],
		Female:                   s.Sex[i] == model.Female,
		TrueMeanSBP:              s.TrueMeanSBP[i],
		EGFR:                     s.EGFR[i],
		TotalCholesterol:         s.TotalCholesterol[i],
		HDL:                      s.HDL[i],
		BMI:                      s.BMI[i],
		Diabetes:                 s.Diabetes[i],
		Smoker:                   s.Smoker[i],
		BPTreated:                s.Treatment[i] != model.StandardCare,
		UACR:                     s.UACR[i],
		HasAF:                    s.AtrialFibrillation[i],
		HasHeartFailure:          s.HeartFailure[i],
		OnSGLT2i:                 s.OnSGLT2i[i],
		Cardiac:                  s.Cardiac[i],
		TimeInStateMonths:        s.TimeInState[i],
		PriorMI:                  s.PriorMICount[i] > 0,
		PriorAnyStroke:           s.PriorAnyStrokeCount[i] > 0,
		PriorTIA:                 s.PriorTIACount[i] > 0,
		Dipping:                  s.Dipping[i],
		TreatmentResponseMod:     s.TreatmentResponseMod[i],
		ModMI:                    s.ModMI[i],
		ModStroke:                s.ModStroke[i],
		ModHF:                    s.ModHF[i],
		ModDeath:                 s.ModDeath[i],
		RenalESRD:                s.Renal[i] == model.ESRD,
		UseDynamicStrokeSubtypes: cfg.UseDynamicStrokeSubtypes,
		UseKFREModel:             cfg.UseKFREModel,
		LifeTable:                lifeTable,
	}
}

func recordEvent(s *model.Store, i int, cause transition.Cause, psa *model.PSAParams, discFactor float64) {
	switch cause {
	case transition.CauseCVDeath:
		s.Cardiac[i] = model.CVDeath
	case transition.CauseNonCVDeath:
		s.Cardiac[i] = model.NonCVDeath
	case transition.CauseMI:
		s.Cardiac[i] = model.AcuteMI
		s.TimeInState[i] = 0
		s.PriorMICount[i]++
		s.TimeSinceLastCVEvent[i] = 0
		s.MICount[i]++
		accrueAcuteCost(s, i, model.AcuteMI, psa, discFactor)
	case transition.CauseIschemicStroke:
		s.Cardiac[i] = model.AcuteIschemicStroke
		s.TimeInState[i] = 0
		s.PriorAnyStrokeCount[i]++
		s.PriorIschemicStrokeCount[i]++
		s.TimeSinceLastCVEvent[i] = 0
		s.IschemicStrokes[i]++
		accrueAcuteCost(s, i, model.AcuteIschemicStroke, psa, discFactor)
	case transition.CauseHemorrhagicStroke:
		s.Cardiac[i] = model.AcuteHemorrhagicStroke
		s.TimeInState[i] = 0
		s.PriorAnyStrokeCount[i]++
		s.PriorHemorrhagicStroke[i]++
		s.TimeSinceLastCVEvent[i] = 0
		s.HemorrhagicStrokes[i]++
		accrueAcuteCost(s, i, model.AcuteHemorrhagicStroke, psa, discFactor)
	case transition.CauseHF:
		s.Cardiac[i] = model.AcuteHF
		s.TimeInState[i] = 0
		s.TimeSinceLastCVEvent[i] = 0
		s.HFCount[i]++
		accrueAcuteCost(s, i, model.AcuteHF, psa, discFactor)
	case transition.CauseTIA:
		s.Cardiac[i] = model.TIA
		s.TimeInState[i] = 0
		s.PriorTIACount[i]++
		s.TimeSinceLastTIA[i] = 0
		s.TimeSinceLastCVEvent[i] = 0
		s.TIACount[i]++
		s.CumulativeDiscountedCost[i] += costs.TIAOneTimeCost(psa) * discFactor
		s.CumulativeDiscountedIndirectCost[i] += costs.IndirectAcuteCost(model.TIA, s.Age[i]) * discFactor
	case transition.CauseNone:
		if next, changed := transition.AcuteToChronic(s.Cardiac[i]); changed {
			s.Cardiac[i] = next
			s.TimeInState[i] = 0
		}
	}
}

func accrueAcuteCost(s *model.Store, i int, cardiac model.CardiacState, psa *model.PSAParams, discFactor float64) {
	s.CumulativeDiscountedCost[i] += costs.OneTimeEventCost(cardiac, psa) * discFactor
	s.CumulativeDiscountedIndirectCost[i] += costs.IndirectAcuteCost(cardiac, s.Age[i]) * discFactor
}
