package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// StubRiskProfileClient is a development/test adapter that returns a
// deterministic risk score derived from the applicant ID.
// It implements port.RiskProfileClient.
type StubRiskProfileClient struct{}

// NewStubRiskProfileClient creates a new stub adapter.
func NewStubRiskProfileClient() *StubRiskProfileClient {
	return &StubRiskProfileClient{}
}

// GetRiskProfile returns a deterministic score between 0 and 100 based on
// a hash of the applicant ID. This allows repeatable test scenarios.
func (c *StubRiskProfileClient) GetRiskProfile(_ context.Context, applicantID string) (valueobject.RiskProfile, error) {
	if applicantID == "" {
		return valueobject.RiskProfile{}, fmt.Errorf("applicant ID is required")
	}

	h := sha256.Sum256([]byte(applicantID))
	num := binary.BigEndian.Uint32(h[:4])
	score := int(num % 101) // range [0, 100]

	return valueobject.NewRiskProfile(applicantID, score, "STUB")
}
