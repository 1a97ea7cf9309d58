package model

// Store is a struct-of-arrays patient buffer: N parallel columns,
// index i is patient i across every column. There is no per-patient
// struct type — callers index all columns by the same i. This layout
// keeps the monthly kernel's hot loop scanning contiguous typed slices
// instead of following pointers into per-patient allocations, the
// same discipline the teacher's trajectory store uses for its
// patient/diagnosis matrices (pre-sized, columnwise, no per-cycle
// allocation).
type Store struct {
	N int

	// Demographics.
	Age []float64
	Sex []Sex

	// Blood pressure.
	BaselineSBP  []float64
	BaselineDBP  []float64
	CurrentSBP   []float64
	CurrentDBP   []float64
	TrueMeanSBP  []float64
	WhiteCoatOff []float64

	// Renal biomarkers.
	EGFR []float64
	UACR []float64

	// Lipids.
	TotalCholesterol []float64
	HDL              []float64

	// Comorbidities (boolean-as-int, stored as bool for clarity).
	Diabetes             []bool
	Smoker                []bool
	HeartFailure          []bool
	AtrialFibrillation    []bool
	OnSGLT2i              []bool
	PrimaryAldosteronism  []bool
	RenalArteryStenosis   []bool
	Pheochromocytoma      []bool
	ObstructiveSleepApnea []bool

	// Anthropometrics.
	BMI []float64

	// Potassium safety.
	SerumK              []float64
	HyperkalemiaFlag    []bool
	HyperkalemiaHistory []int
	OnKBinder           []bool
	MRADoseReduced      []bool

	// Adherence.
	IsAdherent              []bool
	SDI                     []float64
	Dipping                 []DippingStatus
	TimeSinceAdherenceChange []float64

	// State machines.
	Cardiac   []CardiacState
	Renal     []RenalState
	Neuro     []NeuroState
	Treatment []Treatment

	// Event history.
	PriorMICount              []int
	PriorAnyStrokeCount       []int
	PriorIschemicStrokeCount  []int
	PriorHemorrhagicStroke    []int
	PriorTIACount             []int
	TimeSinceLastCVEvent      []float64 // Never sentinel until first event.
	TimeSinceLastTIA          []float64 // Never sentinel until first TIA.

	// Time.
	TimeInSimulation []float64
	TimeInState      []float64 // cardiac-state clock, read by the CVDeath base table.
	TimeInRenalState []float64 // renal-state clock, separate from the cardiac clock.

	// Outcome accumulators.
	CumulativeDiscountedCost         []float64
	CumulativeDiscountedIndirectCost []float64
	CumulativeDiscountedQALY         []float64

	// Treatment caches.
	BaseTreatmentEffect   []float64
	ActiveTreatmentEffect []float64

	// Phenotype modifiers, precomputed at baseline, read-only during
	// simulation.
	ModMI               []float64
	ModStroke           []float64
	ModHF               []float64
	ModESRD             []float64
	ModDeath            []float64
	TreatmentResponseMod []float64

	// Clinical flags.
	NumAntihypertensives []int
	UseKFREModel         []bool

	// Outcome bookkeeping needed by the kernel but not part of the
	// external patient map schema: months spent controlled/uncontrolled
	// and life-years, tracked per patient so aggregation is a single
	// pass at the end of the run.
	MonthsControlled   []float64
	MonthsUncontrolled []float64
	LifeYears          []float64

	// Event counters per patient, summed into the aggregate result.
	MICount          []int
	IschemicStrokes  []int
	HemorrhagicStrokes []int
	TIACount         []int
	HFCount          []int
	NewAFCount       []int
	NewDementiaCount []int
	ESRDCount        []int
	CKD4Count        []int

	// last_treatment_change_month: the simulation month of the most
	// recent treatment assignment or switch. treatment.CheckAdherence
	// and treatment.CheckDiscontinuation read it back to compute months
	// on treatment.
	LastTreatmentChangeMonth []float64
}

// NewStore allocates a Store sized for n patients, every column
// zero-valued except the time-since-event columns
// (TimeSinceLastCVEvent, TimeSinceLastTIA), which it sets to Never.
func NewStore(n int) *Store {
	s := &Store{N: n}
	s.Age = make([]float64, n)
	s.Sex = make([]Sex, n)
	s.BaselineSBP = make([]float64, n)
	s.BaselineDBP = make([]float64, n)
	s.CurrentSBP = make([]float64, n)
	s.CurrentDBP = make([]float64, n)
	s.TrueMeanSBP = make([]float64, n)
	s.WhiteCoatOff = make([]float64, n)
	s.EGFR = make([]float64, n)
	s.UACR = make([]float64, n)
	s.TotalCholesterol = make([]float64, n)
	s.HDL = make([]float64, n)
	s.Diabetes = make([]bool, n)
	s.Smoker = make([]bool, n)
	s.HeartFailure = make([]bool, n)
	s.AtrialFibrillation = make([]bool, n)
	s.OnSGLT2i = make([]bool, n)
	s.PrimaryAldosteronism = make([]bool, n)
	s.RenalArteryStenosis = make([]bool, n)
	s.Pheochromocytoma = make([]bool, n)
	s.ObstructiveSleepApnea = make([]bool, n)
	s.BMI = make([]float64, n)
	s.SerumK = make([]float64, n)
	s.HyperkalemiaFlag = make([]bool, n)
	s.HyperkalemiaHistory = make([]int, n)
	s.OnKBinder = make([]bool, n)
	s.MRADoseReduced = make([]bool, n)
	s.IsAdherent = make([]bool, n)
	s.SDI = make([]float64, n)
	s.Dipping = make([]DippingStatus, n)
	s.TimeSinceAdherenceChange = make([]float64, n)
	s.Cardiac = make([]CardiacState, n)
	s.Renal = make([]RenalState, n)
	s.Neuro = make([]NeuroState, n)
	s.Treatment = make([]Treatment, n)
	s.PriorMICount = make([]int, n)
	s.PriorAnyStrokeCount = make([]int, n)
	s.PriorIschemicStrokeCount = make([]int, n)
	s.PriorHemorrhagicStroke = make([]int, n)
	s.PriorTIACount = make([]int, n)
	s.TimeSinceLastCVEvent = make([]float64, n)
	s.TimeSinceLastTIA = make([]float64, n)
	s.TimeInSimulation = make([]float64, n)
	s.TimeInState = make([]float64, n)
	s.TimeInRenalState = make([]float64, n)
	s.CumulativeDiscountedCost = make([]float64, n)
	s.CumulativeDiscountedIndirectCost = make([]float64, n)
	s.CumulativeDiscountedQALY = make([]float64, n)
	s.BaseTreatmentEffect = make([]float64, n)
	s.ActiveTreatmentEffect = make([]float64, n)
	s.ModMI = make([]float64, n)
	s.ModStroke = make([]float64, n)
	s.ModHF = make([]float64, n)
	s.ModESRD = make([]float64, n)
	s.ModDeath = make([]float64, n)
	s.TreatmentResponseMod = make([]float64, n)
	s.NumAntihypertensives = make([]int, n)
	s.UseKFREModel = make([]bool, n)
	s.MonthsControlled = make([]float64, n)
	s.MonthsUncontrolled = make([]float64, n)
	s.LifeYears = make([]float64, n)
	s.MICount = make([]int, n)
	s.IschemicStrokes = make([]int, n)
	s.HemorrhagicStrokes = make([]int, n)
	s.TIACount = make([]int, n)
	s.HFCount = make([]int, n)
	s.NewAFCount = make([]int, n)
	s.NewDementiaCount = make([]int, n)
	s.ESRDCount = make([]int, n)
	s.CKD4Count = make([]int, n)
	s.LastTreatmentChangeMonth = make([]float64, n)
	for i := range s.TimeSinceLastCVEvent {
		s.TimeSinceLastCVEvent[i] = Never
		s.TimeSinceLastTIA[i] = Never
	}
	return s
}

// IsAlive reports whether patient i is alive: cardiac is neither
// CVDeath nor NonCVDeath, and renal is not RenalDeath.
func (s *Store) IsAlive(i int) bool {
	return !s.Cardiac[i].IsDead() && s.Renal[i] != RenalDeath
}

// CloneFrom resets every column of s, columnwise, from template. Both
// stores must share N. This is the per-replication reset: no
// allocation on the hot path, just a copy() per column, mirroring the
// teacher's "pre-size once, reuse across experiments" matrix idiom.
func (s *Store) CloneFrom(template *Store) {
	copy(s.Age, template.Age)
	copy(s.Sex, template.Sex)
	copy(s.BaselineSBP, template.BaselineSBP)
	copy(s.BaselineDBP, template.BaselineDBP)
	copy(s.CurrentSBP, template.CurrentSBP)
	copy(s.CurrentDBP, template.CurrentDBP)
	copy(s.TrueMeanSBP, template.TrueMeanSBP)
	copy(s.WhiteCoatOff, template.WhiteCoatOff)
	copy(s.EGFR, template.EGFR)
	copy(s.UACR, template.UACR)
	copy(s.TotalCholesterol, template.TotalCholesterol)
	copy(s.HDL, template.HDL)
	copy(s.Diabetes, template.Diabetes)
	copy(s.Smoker, template.Smoker)
	copy(s.HeartFailure, template.HeartFailure)
	copy(s.AtrialFibrillation, template.AtrialFibrillation)
	copy(s.OnSGLT2i, template.OnSGLT2i)
	copy(s.PrimaryAldosteronism, template.PrimaryAldosteronism)
	copy(s.RenalArteryStenosis, template.RenalArteryStenosis)
	copy(s.Pheochromocytoma, template.Pheochromocytoma)
	copy(s.ObstructiveSleepApnea, template.ObstructiveSleepApnea)
	copy(s.BMI, template.BMI)
	copy(s.SerumK, template.SerumK)
	copy(s.HyperkalemiaFlag, template.HyperkalemiaFlag)
	copy(s.HyperkalemiaHistory, template.HyperkalemiaHistory)
	copy(s.OnKBinder, template.OnKBinder)
	copy(s.MRADoseReduced, template.MRADoseReduced)
	copy(s.IsAdherent, template.IsAdherent)
	copy(s.SDI, template.SDI)
	copy(s.Dipping, template.Dipping)
	copy(s.TimeSinceAdherenceChange, template.TimeSinceAdherenceChange)
	copy(s.Cardiac, template.Cardiac)
	copy(s.Renal, template.Renal)
	copy(s.Neuro, template.Neuro)
	copy(s.Treatment, template.Treatment)
	copy(s.PriorMICount, template.PriorMICount)
	copy(s.PriorAnyStrokeCount, template.PriorAnyStrokeCount)
	copy(s.PriorIschemicStrokeCount, template.PriorIschemicStrokeCount)
	copy(s.PriorHemorrhagicStroke, template.PriorHemorrhagicStroke)
	copy(s.PriorTIACount, template.PriorTIACount)
	copy(s.TimeSinceLastCVEvent, template.TimeSinceLastCVEvent)
	copy(s.TimeSinceLastTIA, template.TimeSinceLastTIA)
	copy(s.TimeInSimulation, template.TimeInSimulation)
	copy(s.TimeInState, template.TimeInState)
	copy(s.TimeInRenalState, template.TimeInRenalState)
	copy(s.CumulativeDiscountedCost, template.CumulativeDiscountedCost)
	copy(s.CumulativeDiscountedIndirectCost, template.CumulativeDiscountedIndirectCost)
	copy(s.CumulativeDiscountedQALY, template.CumulativeDiscountedQALY)
	copy(s.BaseTreatmentEffect, template.BaseTreatmentEffect)
	copy(s.ActiveTreatmentEffect, template.ActiveTreatmentEffect)
	copy(s.ModMI, template.ModMI)
	copy(s.ModStroke, template.ModStroke)
	copy(s.ModHF, template.ModHF)
	copy(s.ModESRD, template.ModESRD)
	copy(s.ModDeath, template.ModDeath)
	copy(s.TreatmentResponseMod, template.TreatmentResponseMod)
	copy(s.NumAntihypertensives, template.NumAntihypertensives)
	copy(s.UseKFREModel, template.UseKFREModel)
	copy(s.MonthsControlled, template.MonthsControlled)
	copy(s.MonthsUncontrolled, template.MonthsUncontrolled)
	copy(s.LifeYears, template.LifeYears)
	copy(s.MICount, template.MICount)
	copy(s.IschemicStrokes, template.IschemicStrokes)
	copy(s.HemorrhagicStrokes, template.HemorrhagicStrokes)
	copy(s.TIACount, template.TIACount)
	copy(s.HFCount, template.HFCount)
	copy(s.NewAFCount, template.NewAFCount)
	copy(s.NewDementiaCount, template.NewDementiaCount)
	copy(s.ESRDCount, template.ESRDCount)
	copy(s.CKD4Count, template.CKD4Count)
	copy(s.LastTreatmentChangeMonth, template.LastTreatmentChangeMonth)
}
