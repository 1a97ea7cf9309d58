package psa

import (
	"runtime"

	"github.com/exascience/pargo/parallel"

	"hmse/kernel"
	"hmse/model"
	"hmse/rng"
	"hmse/treatment"
)

// Result is one PSA replication's output: the six per-arm means
// listed in §6 entry point B.
type Result struct {
	IxaMeanCosts     float64
	IxaMeanQALYs     float64
	IxaMeanLifeYears float64

	CompMeanCosts     float64
	CompMeanQALYs     float64
	CompMeanLifeYears float64
}

// Input bundles what the PSA driver needs: the frozen baseline
// snapshot, the shared config, the ordered PSA parameter list, a base
// seed, and the CRN flag. ComparatorTreatment is the non-intervention
// arm's treatment tag (MRA or StandardCare, depending on the caller's
// study design); the intervention arm is always model.Intervention.
type Input struct {
	Snapshot             *model.Store
	Config               *model.Config
	PSAParams            []*model.PSAParams
	BaseSeed             uint64
	CRN                  bool
	ComparatorTreatment  model.Treatment
}

// Run executes all len(in.PSAParams) replications, two arms each,
// with dynamic work-stealing across workers via pargo's parallel.Range
// (the same parallelization idiom the patient-trajectory matrix build
// uses), and returns one Result per input PSA draw in input order.
// Determinism: the RNG seed for each (k, arm) depends only on
// (BaseSeed, k, arm), so results are independent of worker count and
// scheduling order — the output slice is written at disjoint indices.
func Run(in Input) []Result {
	k := len(in.PSAParams)
	results := make([]Result, k)
	if k == 0 {
		return results
	}

	workers := runtime.GOMAXPROCS(0)
	bp := newPool(poolSize(k, workers), in.Snapshot.N)

	parallel.Range(0, k, 0, func(low, high int) {
		for idx := low; idx < high; idx++ {
			results[idx] = runReplication(in, idx, bp)
		}
	})

	return results
}

func runReplication(in Input, idx int, bp *pool) Result {
	params := in.PSAParams[idx]

	iterBase := in.BaseSeed + uint64(idx)*1_000_000
	ixaSeed := iterBase + 1
	var compSeed uint64
	if in.CRN {
		compSeed = ixaSeed
	} else {
		compSeed = iterBase + 2
	}

	buffers := bp.acquire()
	defer bp.release(buffers)

	buffers.intervention.CloneFrom(in.Snapshot)
	buffers.comparator.CloneFrom(in.Snapshot)

	ixaRNG := rng.New(ixaSeed)
	compRNG := rng.New(compSeed)

	assignTreatment(buffers.intervention, model.Intervention, params, ixaRNG)
	assignTreatment(buffers.comparator, in.ComparatorTreatment, params, compRNG)

	ixaResult := kernel.Run(buffers.intervention, in.Config, params, ixaRNG)
	compResult := kernel.Run(buffers.comparator, in.Config, params, compRNG)

	return Result{
		IxaMeanCosts:      ixaResult.MeanCosts(),
		IxaMeanQALYs:      ixaResult.MeanQALYs(),
		IxaMeanLifeYears:  ixaResult.MeanLifeYears(),
		CompMeanCosts:     compResult.MeanCosts(),
		CompMeanQALYs:     compResult.MeanQALYs(),
		CompMeanLifeYears: compResult.MeanLifeYears(),
	}
}

// assignTreatment puts every patient in s onto treatment t for the
// first time, sampling each patient's individual SBP response. Called
// once per arm per replication before the kernel runs.
func assignTreatment(s *model.Store, t model.Treatment, params *model.PSAParams, r *rng.Source) {
	for i := 0; i < s.N; i++ {
		treatment.Assign(s, i, t, params, r, 0)
	}
}
