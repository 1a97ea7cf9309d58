// Command hmsesim is a smoke-test harness for the simulation core: it
// builds a small synthetic population, wires it through the bridge
// entry points, and prints the resulting aggregates. It is not a
// population-generation tool — real population generation is an
// external concern (§1) — only enough synthetic data to exercise the
// core end to end.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"

	"hmse/bridge"
	"hmse/logging"
)

func main() {
	var (
		n          int
		months     int
		seed       int64
		psaDraws   int
		treatment  string
		comparator string
		threads    int
		dev        bool
	)

	var flags flag.FlagSet
	flags.IntVar(&n, "n", 20, "number of synthetic patients")
	flags.IntVar(&months, "months", 120, "simulation horizon in months")
	flags.Int64Var(&seed, "seed", 42, "base RNG seed")
	flags.IntVar(&psaDraws, "psa", 0, "number of PSA replications; 0 runs a single arm instead")
	flags.StringVar(&treatment, "treatment", "Intervention", "single-arm treatment tag (Intervention|MRA|StandardCare)")
	flags.StringVar(&comparator, "comparator", "StandardCare", "PSA comparator-arm treatment tag")
	flags.IntVar(&threads, "threads", 0, "GOMAXPROCS override; 0 leaves the default")
	flags.BoolVar(&dev, "dev", true, "human-readable log output")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if threads > 0 {
		runtime.GOMAXPROCS(threads)
	}

	logger, err := logging.New(dev)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Close()

	patientMap, n2 := syntheticPopulation(n, seed)
	configMap := defaultConfig(months)
	psaMap := defaultPSAParams()

	if psaDraws <= 0 {
		logger.Info("running single-arm simulation", "n", n2, "months", months, "treatment", treatment)
		result, err := bridge.SimulateArm(patientMap, treatment, configMap, psaMap, uint64(seed))
		if err != nil {
			logger.Error("simulation failed", err)
			os.Exit(1)
		}
		for _, k := range []string{"mean_costs", "mean_qalys", "mean_life_years", "cv_deaths", "non_cv_deaths", "mi_count", "any_stroke_count"} {
			fmt.Printf("%-20s %v\n", k, result[k])
		}
		return
	}

	logger.Info("running PSA", "n", n2, "months", months, "draws", psaDraws, "comparator", comparator)
	psaMaps := make([]map[string]any, psaDraws)
	for i := range psaMaps {
		psaMaps[i] = defaultPSAParams()
	}
	results, err := bridge.RunPSA(patientMap, configMap, psaMaps, uint64(seed), true, comparator)
	if err != nil {
		logger.Error("PSA run failed", err)
		os.Exit(1)
	}
	for i, r := range results {
		fmt.Printf("draw %3d  ixa_mean_costs=%.2f  comp_mean_costs=%.2f  ixa_mean_qalys=%.4f  comp_mean_qalys=%.4f\n",
			i, r["ixa_mean_costs"], r["comp_mean_costs"], r["ixa_mean_qalys"], r["comp_mean_qalys"])
	}
}

func defaultConfig(months int) map[string]any {
	return map[string]any{
		"time_horizon_months":         months,
		"cycle_length_months":         1.0,
		"discount_rate":               0.03,
		"cost_perspective":            "US",
		"use_half_cycle_correction":   true,
		"use_competing_risks":         true,
		"use_dynamic_stroke_subtypes": true,
		"use_kfre_model":              true,
		"life_table_country":          "US",
		"economic_perspective":        1,
	}
}

func defaultPSAParams() map[string]any {
	return map[string]any{
		"ixa_sbp_mean":                   20.0,
		"ixa_sbp_sd":                     4.0,
		"spiro_sbp_mean":                 14.0,
		"spiro_sbp_sd":                   4.0,
		"discontinuation_rate_ixa":       0.10,
		"discontinuation_rate_spiro":     0.18,
		"cost_mi_acute":                  18000.0,
		"cost_ischemic_stroke_acute":     22000.0,
		"cost_hemorrhagic_stroke_acute":  38000.0,
		"cost_hf_acute":                  16000.0,
		"cost_esrd_annual":               70000.0,
		"cost_post_stroke_annual":        6000.0,
		"cost_hf_annual":                 4500.0,
		"cost_ixa_monthly":               55.0,
		"disutility_post_mi":             0.08,
		"disutility_post_stroke":         0.15,
		"disutility_chronic_hf":          0.12,
		"disutility_esrd":                0.20,
		"disutility_dementia":            0.30,
	}
}

// syntheticPopulation builds a deterministic n-patient population
// using math/rand (not the core's own splittable rng.Source — this
// harness sits outside the reproducibility contract the core makes
// about its own replications).
func syntheticPopulation(n int, seed int64) (map[string]any, int) {
	src := rand.New(rand.NewSource(seed))

	age := make([]float64, n)
	sex := make([]string, n)
	baselineSBP := make([]float64, n)
	baselineDBP := make([]float64, n)
	currentSBP := make([]float64, n)
	currentDBP := make([]float64, n)
	trueMeanSBP := make([]float64, n)
	whiteCoat := make([]float64, n)
	egfr := make([]float64, n)
	uacr := make([]float64, n)
	chol := make([]float64, n)
	hdl := make([]float64, n)
	diabetes := make([]bool, n)
	smoker := make([]bool, n)
	hf := make([]bool, n)
	af := make([]bool, n)
	sglt2 := make([]bool, n)
	pa := make([]bool, n)
	ras := make([]bool, n)
	pheo := make([]bool, n)
	osa := make([]bool, n)
	bmi := make([]float64, n)
	serumK := make([]float64, n)
	hkFlag := make([]bool, n)
	hkHistory := make([]int, n)
	onBinder := make([]bool, n)
	mraReduced := make([]bool, n)
	isAdherent := make([]bool, n)
	sdi := make([]float64, n)
	dipping := make([]string, n)
	timeSinceAdherence := make([]float64, n)
	cardiac := make([]string, n)
	renal := make([]string, n)
	neuro := make([]string, n)
	treat := make([]string, n)
	priorMI := make([]int, n)
	priorAnyStroke := make([]int, n)
	priorIschemic := make([]int, n)
	priorHemorrhagic := make([]int, n)
	priorTIA := make([]int, n)
	timeSinceCV := make([]float64, n)
	timeSinceTIA := make([]float64, n)
	timeInSim := make([]float64, n)
	timeInState := make([]float64, n)
	modMI := make([]float64, n)
	modStroke := make([]float64, n)
	modHF := make([]float64, n)
	modESRD := make([]float64, n)
	modDeath := make([]float64, n)
	treatMod := make([]float64, n)
	numAHT := make([]int, n)
	useKFRE := make([]bool, n)

	dippingTags := []string{"Normal", "NonDipper", "ReverseDipper"}

	for i := 0; i < n; i++ {
		age[i] = 45 + src.Float64()*30
		if src.Float64() < 0.5 {
			sex[i] = "Male"
		} else {
			sex[i] = "Female"
		}
		baselineSBP[i] = 130 + src.Float64()*30
		baselineDBP[i] = 0.6 * baselineSBP[i]
		currentSBP[i] = baselineSBP[i]
		currentDBP[i] = baselineDBP[i]
		whiteCoat[i] = src.Float64() * 5
		trueMeanSBP[i] = currentSBP[i] - whiteCoat[i]
		egfr[i] = 50 + src.Float64()*50
		uacr[i] = src.Float64() * 50
		chol[i] = 180 + src.Float64()*60
		hdl[i] = 40 + src.Float64()*30
		diabetes[i] = src.Float64() < 0.25
		smoker[i] = src.Float64() < 0.15
		hf[i] = src.Float64() < 0.05
		af[i] = false
		sglt2[i] = src.Float64() < 0.10
		pa[i] = src.Float64() < 0.02
		ras[i] = src.Float64() < 0.02
		pheo[i] = src.Float64() < 0.01
		osa[i] = src.Float64() < 0.10
		bmi[i] = 24 + src.Float64()*10
		serumK[i] = 4.2
		hkFlag[i] = false
		hkHistory[i] = 0
		onBinder[i] = false
		mraReduced[i] = false
		isAdherent[i] = true
		sdi[i] = src.Float64() * 100
		dipping[i] = dippingTags[src.Intn(len(dippingTags))]
		timeSinceAdherence[i] = 0
		cardiac[i] = "NoAcuteEvent"
		renal[i] = "CKD1-2"
		neuro[i] = "Normal"
		treat[i] = "StandardCare"
		priorMI[i] = 0
		priorAnyStroke[i] = 0
		priorIschemic[i] = 0
		priorHemorrhagic[i] = 0
		priorTIA[i] = 0
		timeSinceCV[i] = math.Inf(1)
		timeSinceTIA[i] = math.Inf(1)
		timeInSim[i] = 0
		timeInState[i] = 0
		modMI[i] = 1.0
		modStroke[i] = 1.0
		modHF[i] = 1.0
		modESRD[i] = 1.0
		modDeath[i] = 1.0
		treatMod[i] = 1.0
		numAHT[i] = 1
		useKFRE[i] = true
	}

	m := map[string]any{
		"n":                               n,
		"age":                             age,
		"sex":                             sex,
		"baseline_sbp":                    baselineSBP,
		"baseline_dbp":                    baselineDBP,
		"current_sbp":                     currentSBP,
		"current_dbp":                     currentDBP,
		"true_mean_sbp":                   trueMeanSBP,
		"white_coat_offset":               whiteCoat,
		"egfr":                            egfr,
		"uacr":                            uacr,
		"total_cholesterol":               chol,
		"hdl":                             hdl,
		"diabetes":                        diabetes,
		"smoker":                          smoker,
		"heart_failure":                   hf,
		"atrial_fibrillation":             af,
		"on_sglt2i":                       sglt2,
		"primary_aldosteronism":           pa,
		"renal_artery_stenosis":           ras,
		"pheochromocytoma":                pheo,
		"obstructive_sleep_apnea":         osa,
		"bmi":                             bmi,
		"serum_k":                         serumK,
		"hyperkalemia_flag":               hkFlag,
		"hyperkalemia_history":            hkHistory,
		"on_k_binder":                     onBinder,
		"mra_dose_reduced":                mraReduced,
		"is_adherent":                     isAdherent,
		"sdi":                             sdi,
		"dipping":                         dipping,
		"time_since_adherence_change":     timeSinceAdherence,
		"cardiac_state":                   cardiac,
		"renal_state":                     renal,
		"neuro_state":                     neuro,
		"treatment":                       treat,
		"prior_mi_count":                  priorMI,
		"prior_any_stroke_count":          priorAnyStroke,
		"prior_ischemic_stroke_count":     priorIschemic,
		"prior_hemorrhagic_stroke_count":  priorHemorrhagic,
		"prior_tia_count":                 priorTIA,
		"time_since_last_cv_event":        timeSinceCV,
		"time_since_last_tia":             timeSinceTIA,
		"time_in_simulation":              timeInSim,
		"time_in_state":                   timeInState,
		"mod_mi":                          modMI,
		"mod_stroke":                      modStroke,
		"mod_hf":                          modHF,
		"mod_esrd":                        modESRD,
		"mod_death":                       modDeath,
		"treatment_response_mod":          treatMod,
		"num_antihypertensives":           numAHT,
		"use_kfre_model":                  useKFRE,
	}
	return m, n
}
