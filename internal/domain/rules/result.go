// Package rules provides the generic validation-rule contract used by the
// underwriting engine: ordered, criticality-tagged rules evaluated against a
// target object, composable behind applicability predicates.
package rules

// ---------------------------------------------------------------------------
// Result – immutable outcome of a single rule check
// ---------------------------------------------------------------------------

const defaultFailureMessage = "validation failed"

// Result is the outcome of one rule check: a pass, or a failure with a
// diagnostic message. Failure is data, not control flow; rules never signal
// failure through errors or panics.
type Result struct {
	ok      bool
	message string
}

// Pass returns a successful result.
func Pass() Result {
	return Result{ok: true}
}

// Fail returns a failed result carrying the given diagnostic. An empty
// message is replaced with a generic one so that failed results always carry
// a diagnostic.
func Fail(message string) Result {
	if message == "" {
		message = defaultFailureMessage
	}
	return Result{message: message}
}

// OK reports whether the check succeeded.
func (r Result) OK() bool { return r.ok }

// Message returns the failure diagnostic. The boolean is false for passing
// results, which carry no message.
func (r Result) Message() (string, bool) {
	if r.ok {
		return "", false
	}
	return r.message, true
}
