package model

// PSAParams is one draw of the uncertain parameters: treatment SBP
// effect distributions, discontinuation rates, event costs, and
// disutilities. One PSAParams feeds one replication (both arms).
type PSAParams struct {
	IxaSBPMean    float64
	IxaSBPSD      float64
	SpiroSBPMean  float64
	SpiroSBPSD    float64

	DiscontinuationRateIxa   float64
	DiscontinuationRateSpiro float64

	CostMIAcute                float64
	CostIschemicStrokeAcute    float64
	CostHemorrhagicStrokeAcute float64
	CostHFAcute                float64
	CostESRDAnnual             float64
	CostPostStrokeAnnual       float64
	CostHFAnnual               float64
	CostIxaMonthly             float64

	DisutilityPostMI      float64
	DisutilityPostStroke  float64
	DisutilityChronicHF   float64
	DisutilityESRD        float64
	DisutilityDementia    float64
}
