package rules

// ---------------------------------------------------------------------------
// Rule – contract implemented by every underwriting check
// ---------------------------------------------------------------------------

// Rule is a single validation check over a target of type T. Implementations
// are stateless value-like objects: they may read the target and the shared
// Context but must not mutate the target, and they are reused across many
// evaluation passes.
type Rule[T any] interface {
	// Evaluate runs the check against the target. The shared Context carries
	// cross-rule data computed earlier in the pass (risk profiles, derived
	// values). Failure is reported as data via the Result, never as an error.
	Evaluate(target T, ctx *Context) Result

	// Order establishes the deterministic evaluation sequence. Lower runs
	// first; ties keep insertion order.
	Order() int

	// Critical reports whether a failure of this rule aborts the remaining
	// evaluation and forces a decline.
	Critical() bool

	// Name is the stable identifier used for reporting and audit.
	Name() string
}

// Predicate is a pure function deciding whether a rule applies to a target.
type Predicate[T any] func(T) bool

// ---------------------------------------------------------------------------
// Func – adapter for building rules from plain functions
// ---------------------------------------------------------------------------

// Func adapts a plain function into a Rule. It is the cheapest way to define
// a check inline, used by the rule catalog and in tests.
type Func[T any] struct {
	RuleName   string
	RuleOrder  int
	IsCritical bool
	Check      func(target T, ctx *Context) Result
}

// Evaluate runs the wrapped check.
func (f Func[T]) Evaluate(target T, ctx *Context) Result {
	return f.Check(target, ctx)
}

// Order returns the configured evaluation order.
func (f Func[T]) Order() int { return f.RuleOrder }

// Critical returns the configured criticality flag.
func (f Func[T]) Critical() bool { return f.IsCritical }

// Name returns the configured rule name.
func (f Func[T]) Name() string { return f.RuleName }
