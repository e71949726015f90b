package underwriting

// ---------------------------------------------------------------------------
// RuleResult – snapshot of one rule's outcome for a single evaluation run
// ---------------------------------------------------------------------------

// RuleResult records how a single rule fared against an application. It is
// created per evaluation run and kept as the audit trail of the decision.
type RuleResult struct {
	name     string
	passed   bool
	critical bool
	message  string
}

// NewRuleResult builds a RuleResult. The message is only retained for failed
// results; a passing rule carries no diagnostic.
func NewRuleResult(name string, passed, critical bool, message string) RuleResult {
	if passed {
		message = ""
	}
	return RuleResult{
		name:     name,
		passed:   passed,
		critical: critical,
		message:  message,
	}
}

// Name returns the stable identifier of the rule that produced this result.
func (r RuleResult) Name() string { return r.name }

// Passed reports whether the rule check succeeded.
func (r RuleResult) Passed() bool { return r.passed }

// Critical reports whether a failure of this rule aborts further evaluation.
func (r RuleResult) Critical() bool { return r.critical }

// Message returns the failure diagnostic. The boolean is false for passing
// results, which carry no message.
func (r RuleResult) Message() (string, bool) {
	if r.message == "" {
		return "", false
	}
	return r.message, true
}
