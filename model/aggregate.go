package model

// AggregateResult is the per-arm summary produced by the kernel after
// a single replication finishes: totals across all N patients plus
// the five derived per-patient means used by the bridge entry points.
type AggregateResult struct {
	TotalDirectCost   float64
	TotalIndirectCost float64
	TotalQALY         float64
	TotalLifeYears    float64

	MICount               int
	AnyStrokeCount        int
	IschemicStrokeCount   int
	HemorrhagicStrokeCount int
	TIACount              int
	HFCount               int
	CVDeaths              int
	NonCVDeaths           int
	ESRDCount             int
	CKD4Count             int
	RenalDeaths           int
	DementiaCount         int
	NewAFCount            int
	SGLT2UsersAtEnd       int

	MonthsControlled   float64
	MonthsUncontrolled float64

	N int
}

// MeanCosts returns the per-patient mean total (direct+indirect) cost.
func (a *AggregateResult) MeanCosts() float64 {
	if a.N == 0 {
		return 0
	}
	return (a.TotalDirectCost + a.TotalIndirectCost) / float64(a.N)
}

// MeanIndirectCosts returns the per-patient mean indirect cost.
func (a *AggregateResult) MeanIndirectCosts() float64 {
	if a.N == 0 {
		return 0
	}
	return a.TotalIndirectCost / float64(a.N)
}

// MeanTotalCosts is an alias of MeanCosts kept for entry-point key
// parity with §6 ("mean_costs" and "mean_total_costs" both appear).
func (a *AggregateResult) MeanTotalCosts() float64 { return a.MeanCosts() }

// MeanQALYs returns the per-patient mean QALY.
func (a *AggregateResult) MeanQALYs() float64 {
	if a.N == 0 {
		return 0
	}
	return a.TotalQALY / float64(a.N)
}

// MeanLifeYears returns the per-patient mean life-years.
func (a *AggregateResult) MeanLifeYears() float64 {
	if a.N == 0 {
		return 0
	}
	return a.TotalLifeYears / float64(a.N)
}

// Aggregate folds a finished Store into an AggregateResult. Pure,
// single pass, no mutation of s — grounded on the teacher's
// MetricsFromTrajectories fold-style aggregation.
func Aggregate(s *Store) *AggregateResult {
	a := &AggregateResult{N: s.N}
	for i := 0; i < s.N; i++ {
		a.TotalDirectCost += s.CumulativeDiscountedCost[i]
		a.TotalIndirectCost += s.CumulativeDiscountedIndirectCost[i]
		a.TotalQALY += s.CumulativeDiscountedQALY[i]
		a.TotalLifeYears += s.LifeYears[i]
		a.MonthsControlled += s.MonthsControlled[i]
		a.MonthsUncontrolled += s.MonthsUncontrolled[i]

		a.MICount += s.MICount[i]
		a.IschemicStrokeCount += s.IschemicStrokes[i]
		a.HemorrhagicStrokeCount += s.HemorrhagicStrokes[i]
		a.AnyStrokeCount += s.IschemicStrokes[i] + s.HemorrhagicStrokes[i]
		a.TIACount += s.TIACount[i]
		a.HFCount += s.HFCount[i]
		a.NewAFCount += s.NewAFCount[i]
		a.DementiaCount += s.NewDementiaCount[i]
		a.ESRDCount += s.ESRDCount[i]
		a.CKD4Count += s.CKD4Count[i]

		if s.Cardiac[i] == CVDeath {
			a.CVDeaths++
		}
		if s.Cardiac[i] == NonCVDeath {
			a.NonCVDeaths++
		}
		if s.Renal[i] == RenalDeath {
			a.RenalDeaths++
		}
		if s.OnSGLT2i[i] && s.IsAlive(i) {
			a.SGLT2UsersAtEnd++
		}
	}
	return a
}
