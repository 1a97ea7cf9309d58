package risk

import "sort"

// lifeTablePoint is one tabulated (age, qx) pair: qx is the annual
// probability of death at that age.
type lifeTablePoint struct {
	age float64
	qx  float64
}

// LifeTable is a piecewise-linear annual-mortality curve for one
// jurisdiction and sex.
type LifeTable struct {
	points []lifeTablePoint
}

// AnnualMortality interpolates qx at age, clamping outside the table
// to the nearest endpoint.
func (t *LifeTable) AnnualMortality(age float64) float64 {
	pts := t.points
	if age <= pts[0].age {
		return pts[0].qx
	}
	last := pts[len(pts)-1]
	if age >= last.age {
		return last.qx
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].age >= age })
	hi := pts[i]
	lo := pts[i-1]
	frac := (age - lo.age) / (hi.age - lo.age)
	return lo.qx + frac*(hi.qx-lo.qx)
}

// MonthlyMortality converts AnnualMortality(age) to a monthly
// probability.
func (t *LifeTable) MonthlyMortality(age float64) float64 {
	return MonthlyFromAnnual(t.AnnualMortality(age))
}

func newTable(ages []float64, qx []float64) *LifeTable {
	pts := make([]lifeTablePoint, len(ages))
	for i := range ages {
		pts[i] = lifeTablePoint{age: ages[i], qx: qx[i]}
	}
	return &LifeTable{points: pts}
}

// usAgeGrid is the shared age grid for the bundled US tables,
// abridged decennial life-table ages.
var usAgeGrid = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

var usMaleQx = []float64{
	0.0060, 0.0008, 0.0013, 0.0016, 0.0025, 0.0052, 0.0110, 0.0230, 0.0520, 0.1250, 0.3200,
}

var usFemaleQx = []float64{
	0.0050, 0.0006, 0.0006, 0.0009, 0.0016, 0.0034, 0.0072, 0.0160, 0.0400, 0.1050, 0.2900,
}

// USMaleLifeTable and USFemaleLifeTable are the bundled default
// jurisdiction tables and the only ones bundled; there is no way to
// register another. Every jurisdiction tag resolves to the US tables
// rather than failing, since
// life_table_country is advisory, not load-bearing for invariants.
var (
	USMaleLifeTable   = newTable(usAgeGrid, usMaleQx)
	USFemaleLifeTable = newTable(usAgeGrid, usFemaleQx)
)

// LifeTableFor resolves the (jurisdiction, sex) life table. Only "US"
// is bundled; any other tag resolves to the US table.
func LifeTableFor(jurisdiction string, female bool) *LifeTable {
	_ = jurisdiction
	if female {
		return USFemaleLifeTable
	}
	return USMaleLifeTable
}
