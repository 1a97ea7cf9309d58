package treatment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hmse/model"
	"hmse/rng"
	"hmse/treatment"
)

func TestCheckAdherenceEventuallyFlipsWithHighEnoughDrift(t *testing.T) {
	s := newPatient()
	s.IsAdherent[0] = true
	s.Treatment[0] = model.MRA
	s.Sex[0] = model.Male
	s.LastTreatmentChangeMonth[0] = 0

	r := rng.New(7)
	flipped := false
	for i := 0; i < 500 && !flipped; i++ {
		flipped = treatment.CheckAdherence(s, 0, r, 0)
	}
	assert.True(t, flipped)
	assert.False(t, s.IsAdherent[0])
}

func TestCheckAdherenceResetsTimeSinceChangeOnFlip(t *testing.T) {
	s := newPatient()
	s.IsAdherent[0] = true
	s.Treatment[0] = model.MRA
	s.Sex[0] = model.Male

	r := rng.New(7)
	for i := 0; i < 500; i++ {
		if treatment.CheckAdherence(s, 0, r, 0) {
			assert.Equal(t, 0.0, s.TimeSinceAdherenceChange[0])
			return
		}
	}
	t.Fatal("adherence never flipped across 500 draws")
}

func TestCheckAdherenceInterventionHasLowerAdherenceLossPressure(t *testing.T) {
	// Intervention's adherence-loss multiplier (0.48) is well below
	// MRA's (1.2-1.4), so under identical draws intervention patients
	// should flip less often across a fixed number of cycles.
	const trials = 300
	ixaFlips, mraFlips := 0, 0
	for seed := uint64(0); seed < trials; seed++ {
		s1 := newPatient()
		s1.IsAdherent[0] = true
		s1.Treatment[0] = model.Intervention
		if treatment.CheckAdherence(s1, 0, rng.New(seed), 0) {
			ixaFlips++
		}

		s2 := newPatient()
		s2.IsAdherent[0] = true
		s2.Treatment[0] = model.MRA
		s2.Sex[0] = model.Male
		if treatment.CheckAdherence(s2, 0, rng.New(seed), 0) {
			mraFlips++
		}
	}
	assert.LessOrEqual(t, ixaFlips, mraFlips)
}
