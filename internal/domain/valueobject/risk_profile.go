package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskProfile – externally sourced applicant risk data
// ---------------------------------------------------------------------------

// RiskProfile carries the applicant risk data fetched from the risk bureau
// before an evaluation pass. Scores are on a 0-100 scale, higher meaning
// riskier.
type RiskProfile struct {
	ApplicantID string
	Score       int
	Source      string
}

// NewRiskProfile validates and builds a RiskProfile.
func NewRiskProfile(applicantID string, score int, source string) (RiskProfile, error) {
	if applicantID == "" {
		return RiskProfile{}, fmt.Errorf("applicant ID is required")
	}
	if score < 0 || score > 100 {
		return RiskProfile{}, fmt.Errorf("risk score out of range [0,100]: %d", score)
	}
	return RiskProfile{ApplicantID: applicantID, Score: score, Source: source}, nil
}
