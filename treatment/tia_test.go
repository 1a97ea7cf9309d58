package treatment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/model"
	"hmse/rng"
	"hmse/treatment"
)

func TestCheckTIAToStrokeInactiveWithoutPriorTIA(t *testing.T) {
	s := newPatient()
	fired := treatment.CheckTIAToStroke(s, 0, rng.New(1))
	assert.False(t, fired)
}

func TestCheckTIAToStrokeInactiveAfterWindowCloses(t *testing.T) {
	s := newPatient()
	s.PriorTIACount[0] = 1
	s.TimeSinceLastTIA[0] = 4
	fired := treatment.CheckTIAToStroke(s, 0, rng.New(1))
	assert.False(t, fired)
}

func TestCheckTIAToStrokeEventuallyConvertsWithinWindow(t *testing.T) {
	s := newPatient()
	s.PriorTIACount[0] = 1
	s.TimeSinceLastTIA[0] = 1
	s.CurrentSBP[0] = 180
	s.Diabetes[0] = true
	s.AtrialFibrillation[0] = true

	r := rng.New(2)
	fired := false
	for i := 0; i < 200 && !fired; i++ {
		fired = treatment.CheckTIAToStroke(s, 0, r)
	}
	assert.True(t, fired)
	assert.Equal(t, model.AcuteIschemicStroke, s.Cardiac[0])
	assert.Equal(t, 1, s.PriorIschemicStrokeCount[0])
}
