package simerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmse/simerr"
)

func TestContractCarriesKeyAndMessage(t *testing.T) {
	err := simerr.Contract("egfr", "must be positive")
	assert.Equal(t, simerr.ContractViolation, err.Kind)
	assert.Equal(t, "egfr", err.Key)
	assert.Contains(t, err.Error(), "egfr")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestContractfFormats(t *testing.T) {
	err := simerr.Contractf("n", "expected positive int, got %v", -3)
	assert.Contains(t, err.Error(), "-3")
}

func TestInvariantKind(t *testing.T) {
	err := simerr.Invariant("probability sum exceeded 1")
	assert.True(t, simerr.Is(err, simerr.NumericInvariant))
	assert.False(t, simerr.Is(err, simerr.ContractViolation))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("buffer pool exhausted")
	err := simerr.Wrap(cause, "acquire failed")
	require.True(t, simerr.Is(err, simerr.Internal))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsOnPlainError(t *testing.T) {
	assert.False(t, simerr.Is(errors.New("not ours"), simerr.ContractViolation))
}
