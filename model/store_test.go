package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmse/model"
)

func TestNewStoreSentinelsTimeSinceEventColumns(t *testing.T) {
	s := model.NewStore(5)
	for i := 0; i < 5; i++ {
		assert.True(t, model.IsNever(s.TimeSinceLastCVEvent[i]))
		assert.True(t, model.IsNever(s.TimeSinceLastTIA[i]))
	}
}

func TestNewStoreColumnsAreLengthN(t *testing.T) {
	const n = 7
	s := model.NewStore(n)
	require.Len(t, s.Age, n)
	require.Len(t, s.Cardiac, n)
	require.Len(t, s.CumulativeDiscountedIndirectCost, n)
}

func TestIsAliveFalseAfterCVDeath(t *testing.T) {
	s := model.NewStore(1)
	assert.True(t, s.IsAlive(0))
	s.Cardiac[0] = model.CVDeath
	assert.False(t, s.IsAlive(0))
}

func TestIsAliveFalseAfterRenalDeath(t *testing.T) {
	s := model.NewStore(1)
	s.Renal[0] = model.RenalDeath
	assert.False(t, s.IsAlive(0))
}

func TestCloneFromCopiesColumnsNotReferences(t *testing.T) {
	template := model.NewStore(3)
	template.Age[0] = 55
	template.Cardiac[1] = model.AcuteMI

	dst := model.NewStore(3)
	dst.CloneFrom(template)

	assert.Equal(t, 55.0, dst.Age[0])
	assert.Equal(t, model.AcuteMI, dst.Cardiac[1])

	// Mutating the destination must not affect the template: CloneFrom
	// must copy by value, not alias the backing arrays.
	dst.Age[0] = 99
	assert.Equal(t, 55.0, template.Age[0])
}
