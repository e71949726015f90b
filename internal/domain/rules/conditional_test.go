package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverbank/underwriting-service/internal/domain/rules"
)

// applicant is a minimal target type for exercising the generic contract.
type applicant struct {
	age    int
	smoker bool
}

// countingRule records how often it was evaluated.
type countingRule struct {
	name     string
	order    int
	critical bool
	result   rules.Result
	calls    int
}

func (r *countingRule) Evaluate(_ applicant, _ *rules.Context) rules.Result {
	r.calls++
	return r.result
}

func (r *countingRule) Order() int     { return r.order }
func (r *countingRule) Critical() bool { return r.critical }
func (r *countingRule) Name() string   { return r.name }

func TestConditional_PredicateFalse_SkipsInnerRule(t *testing.T) {
	inner := &countingRule{name: "SmokerSurcharge", result: rules.Fail("surcharge not acknowledged")}
	rule := rules.When(func(a applicant) bool { return a.smoker }, inner)

	res := rule.Evaluate(applicant{smoker: false}, rules.NewContext())

	assert.True(t, res.OK())
	assert.Equal(t, 0, inner.calls, "inner rule must not be invoked when the predicate rejects")
}

func TestConditional_PredicateTrue_DelegatesUnchanged(t *testing.T) {
	inner := &countingRule{name: "SmokerSurcharge", result: rules.Fail("surcharge not acknowledged")}
	rule := rules.When(func(a applicant) bool { return a.smoker }, inner)

	res := rule.Evaluate(applicant{smoker: true}, rules.NewContext())

	assert.False(t, res.OK())
	msg, ok := res.Message()
	assert.True(t, ok)
	assert.Equal(t, "surcharge not acknowledged", msg)
	assert.Equal(t, 1, inner.calls)
}

func TestConditional_DelegatesMetadata(t *testing.T) {
	inner := &countingRule{name: "MaxAge", order: 7, critical: true}
	rule := rules.When(func(applicant) bool { return true }, inner)

	assert.Equal(t, "Conditional[MaxAge]", rule.Name())
	assert.Equal(t, 7, rule.Order())
	assert.True(t, rule.Critical())
}

func TestConditional_Nesting(t *testing.T) {
	inner := &countingRule{name: "MaxAge", result: rules.Fail("too old")}
	nested := rules.When(
		func(a applicant) bool { return a.age > 0 },
		rules.When(func(a applicant) bool { return a.smoker }, inner),
	)

	assert.Equal(t, "Conditional[Conditional[MaxAge]]", nested.Name())

	t.Run("outer predicate false skips everything", func(t *testing.T) {
		res := nested.Evaluate(applicant{age: 0, smoker: true}, rules.NewContext())
		assert.True(t, res.OK())
		assert.Equal(t, 0, inner.calls)
	})

	t.Run("inner predicate false skips the rule", func(t *testing.T) {
		res := nested.Evaluate(applicant{age: 30, smoker: false}, rules.NewContext())
		assert.True(t, res.OK())
		assert.Equal(t, 0, inner.calls)
	})

	t.Run("both predicates true runs the rule", func(t *testing.T) {
		res := nested.Evaluate(applicant{age: 30, smoker: true}, rules.NewContext())
		assert.False(t, res.OK())
		assert.Equal(t, 1, inner.calls)
	})
}
