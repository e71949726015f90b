package rules

// ---------------------------------------------------------------------------
// Conditional – applicability decorator
// ---------------------------------------------------------------------------

// Conditional guards a rule behind an applicability predicate. When the
// predicate rejects the target the wrapped rule is never invoked and the
// check passes; otherwise evaluation delegates entirely to the wrapped rule.
//
// Applicability is attached at rule-set assembly time, so the same rule
// implementation can serve different rule sets under different guards, and
// the guard logic is testable on its own. Conditionals nest: wrapping a
// Conditional in another ANDs the predicates.
type Conditional[T any] struct {
	predicate Predicate[T]
	inner     Rule[T]
}

// When wraps inner so that it only runs for targets accepted by predicate.
func When[T any](predicate Predicate[T], inner Rule[T]) Conditional[T] {
	return Conditional[T]{predicate: predicate, inner: inner}
}

// Evaluate short-circuits to a pass when the predicate rejects the target,
// and otherwise returns the wrapped rule's result unchanged.
func (c Conditional[T]) Evaluate(target T, ctx *Context) Result {
	if !c.predicate(target) {
		return Pass()
	}
	return c.inner.Evaluate(target, ctx)
}

// Order returns the wrapped rule's evaluation order.
func (c Conditional[T]) Order() int { return c.inner.Order() }

// Critical returns the wrapped rule's criticality.
func (c Conditional[T]) Critical() bool { return c.inner.Critical() }

// Name returns the wrapped rule's name tagged as conditional.
func (c Conditional[T]) Name() string {
	return "Conditional[" + c.inner.Name() + "]"
}
