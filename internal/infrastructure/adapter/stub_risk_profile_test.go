package adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverbank/underwriting-service/internal/infrastructure/adapter"
)

func TestStubRiskProfileClient_GetRiskProfile(t *testing.T) {
	client := adapter.NewStubRiskProfileClient()

	t.Run("returns a deterministic score", func(t *testing.T) {
		first, err := client.GetRiskProfile(context.Background(), "applicant-001")
		require.NoError(t, err)

		second, err := client.GetRiskProfile(context.Background(), "applicant-001")
		require.NoError(t, err)

		assert.Equal(t, first.Score, second.Score)
		assert.Equal(t, "STUB", first.Source)
	})

	t.Run("scores stay within range", func(t *testing.T) {
		for _, id := range []string{"a", "b", "c", "applicant-with-a-long-id"} {
			profile, err := client.GetRiskProfile(context.Background(), id)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, profile.Score, 0)
			assert.LessOrEqual(t, profile.Score, 100)
		}
	})

	t.Run("rejects an empty applicant ID", func(t *testing.T) {
		_, err := client.GetRiskProfile(context.Background(), "")
		assert.Error(t, err)
	})
}
