package underwriting

import "fmt"

// ---------------------------------------------------------------------------
// Decision – immutable value object
// ---------------------------------------------------------------------------

// Decision represents the final outcome of underwriting an application.
type Decision struct {
	value string
}

const (
	decisionApproved       = "APPROVED"
	decisionRequiresReview = "REQUIRES_MANUAL_REVIEW"
	decisionDeclined       = "DECLINED"
)

var (
	DecisionApproved       = Decision{value: decisionApproved}
	DecisionRequiresReview = Decision{value: decisionRequiresReview}
	DecisionDeclined       = Decision{value: decisionDeclined}
)

var validDecisions = map[string]Decision{
	decisionApproved:       DecisionApproved,
	decisionRequiresReview: DecisionRequiresReview,
	decisionDeclined:       DecisionDeclined,
}

// NewDecision creates a Decision from a raw string.
func NewDecision(s string) (Decision, error) {
	v, ok := validDecisions[s]
	if !ok {
		return Decision{}, fmt.Errorf("invalid underwriting decision: %q", s)
	}
	return v, nil
}

// String returns the string representation of the decision.
func (d Decision) String() string { return d.value }

// IsZero returns true if the decision has not been initialised.
func (d Decision) IsZero() bool { return d.value == "" }

// Equal returns true when both decisions carry the same value.
func (d Decision) Equal(other Decision) bool { return d.value == other.value }
