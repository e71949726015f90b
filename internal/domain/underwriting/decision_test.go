package underwriting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
)

func TestNewDecision(t *testing.T) {
	for _, raw := range []string{"APPROVED", "REQUIRES_MANUAL_REVIEW", "DECLINED"} {
		d, err := underwriting.NewDecision(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, d.String())
		assert.False(t, d.IsZero())
	}
}

func TestNewDecision_Invalid(t *testing.T) {
	_, err := underwriting.NewDecision("MAYBE")
	assert.Error(t, err)
}

func TestDecision_Equal(t *testing.T) {
	assert.True(t, underwriting.DecisionApproved.Equal(underwriting.DecisionApproved))
	assert.False(t, underwriting.DecisionApproved.Equal(underwriting.DecisionDeclined))
	assert.True(t, underwriting.Decision{}.IsZero())
}
