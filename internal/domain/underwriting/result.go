package underwriting

import (
	"errors"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Result – aggregate outcome of one underwriting evaluation pass
// ---------------------------------------------------------------------------

var (
	// ErrReasonRequired is returned when a non-approved result is constructed
	// without a reason.
	ErrReasonRequired = errors.New("underwriting: reason is required for non-approved results")

	// ErrFailedResultInApproval is returned when an approved result is
	// constructed over a result list that contains failures.
	ErrFailedResultInApproval = errors.New("underwriting: approved result must not contain failed rule results")
)

// Result is the immutable aggregate of an evaluation run: the decision, the
// rule results that informed it (in evaluation order), and the reason behind
// a non-approved decision.
type Result struct {
	decision    Decision
	ruleResults []RuleResult
	reason      string
}

// Approved builds an APPROVED result without rule-level detail.
func Approved() Result {
	return Result{decision: DecisionApproved}
}

// ApprovedWith builds an APPROVED result carrying the rule results that all
// passed. Supplying a failed result is a programmer error and is rejected.
func ApprovedWith(results []RuleResult) (Result, error) {
	for _, r := range results {
		if !r.Passed() {
			return Result{}, fmt.Errorf("%w: %s", ErrFailedResultInApproval, r.Name())
		}
	}
	return Result{decision: DecisionApproved, ruleResults: copyResults(results)}, nil
}

// RequiresReview builds a REQUIRES_MANUAL_REVIEW result. The reason must be
// non-empty.
func RequiresReview(results []RuleResult, reason string) (Result, error) {
	if strings.TrimSpace(reason) == "" {
		return Result{}, ErrReasonRequired
	}
	return Result{
		decision:    DecisionRequiresReview,
		ruleResults: copyResults(results),
		reason:      reason,
	}, nil
}

// Declined builds a DECLINED result. The reason must be non-empty.
func Declined(results []RuleResult, reason string) (Result, error) {
	if strings.TrimSpace(reason) == "" {
		return Result{}, ErrReasonRequired
	}
	return Result{
		decision:    DecisionDeclined,
		ruleResults: copyResults(results),
		reason:      reason,
	}, nil
}

// Decision returns the underwriting decision.
func (r Result) Decision() Decision { return r.decision }

// IsApproved reports whether the application was approved.
func (r Result) IsApproved() bool { return r.decision.Equal(DecisionApproved) }

// IsDeclined reports whether the application was declined.
func (r Result) IsDeclined() bool { return r.decision.Equal(DecisionDeclined) }

// RequiresManualReview reports whether the application needs a human decision.
func (r Result) RequiresManualReview() bool {
	return r.decision.Equal(DecisionRequiresReview)
}

// Reason returns the decline/review reason. The boolean is false for approved
// results, which carry no reason.
func (r Result) Reason() (string, bool) {
	if r.reason == "" {
		return "", false
	}
	return r.reason, true
}

// RuleResults returns the rule results in evaluation order.
func (r Result) RuleResults() []RuleResult { return copyResults(r.ruleResults) }

// ---------------------------------------------------------------------------
// Aggregation policy
// ---------------------------------------------------------------------------

// Aggregate folds a sequence of rule results into a single Result using the
// decision precedence:
//
//  1. any critical failure          -> DECLINED, reason = first critical failure
//  2. any non-critical failure      -> REQUIRES_MANUAL_REVIEW, reasons joined
//  3. all passed (or no rules ran)  -> APPROVED
//
// Under fail-fast evaluation at most one critical failure is recorded, but
// result lists assembled through other paths may carry several; the first in
// evaluation order wins.
func Aggregate(results []RuleResult) Result {
	var reviewReasons []string

	for _, r := range results {
		if r.Passed() {
			continue
		}
		msg, _ := r.Message()
		if r.Critical() {
			return Result{
				decision:    DecisionDeclined,
				ruleResults: copyResults(results),
				reason:      msg,
			}
		}
		reviewReasons = append(reviewReasons, msg)
	}

	if len(reviewReasons) > 0 {
		return Result{
			decision:    DecisionRequiresReview,
			ruleResults: copyResults(results),
			reason:      strings.Join(reviewReasons, "; "),
		}
	}

	return Result{decision: DecisionApproved, ruleResults: copyResults(results)}
}

func copyResults(src []RuleResult) []RuleResult {
	if len(src) == 0 {
		return nil
	}
	dst := make([]RuleResult, len(src))
	copy(dst, src)
	return dst
}
