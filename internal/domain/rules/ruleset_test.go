package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverbank/underwriting-service/internal/domain/rules"
	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
)

func ruleNames(results []underwriting.RuleResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name())
	}
	return names
}

func TestEvaluateAll_SortsByOrder(t *testing.T) {
	var evaluated []string
	mk := func(name string, order int) rules.Rule[applicant] {
		return rules.Func[applicant]{
			RuleName:  name,
			RuleOrder: order,
			Check: func(applicant, *rules.Context) rules.Result {
				evaluated = append(evaluated, name)
				return rules.Pass()
			},
		}
	}

	// Registered out of order on purpose.
	result := rules.EvaluateAll(applicant{}, rules.NewContext(), []rules.Rule[applicant]{
		mk("third", 3), mk("first", 1), mk("second", 2),
	})

	assert.Equal(t, []string{"first", "second", "third"}, evaluated)
	assert.Equal(t, []string{"first", "second", "third"}, ruleNames(result.RuleResults()))
}

func TestEvaluateAll_StableForEqualOrders(t *testing.T) {
	mk := func(name string) rules.Rule[applicant] {
		return rules.Func[applicant]{
			RuleName:  name,
			RuleOrder: 5,
			Check:     func(applicant, *rules.Context) rules.Result { return rules.Pass() },
		}
	}

	result := rules.EvaluateAll(applicant{}, rules.NewContext(), []rules.Rule[applicant]{
		mk("a"), mk("b"), mk("c"),
	})

	assert.Equal(t, []string{"a", "b", "c"}, ruleNames(result.RuleResults()))
}

func TestEvaluateAll_CriticalFailureStopsEvaluation(t *testing.T) {
	later := &countingRule{name: "later", order: 3, result: rules.Pass()}
	result := rules.EvaluateAll(applicant{}, rules.NewContext(), []rules.Rule[applicant]{
		later,
		rules.Func[applicant]{
			RuleName:   "MinAge",
			RuleOrder:  2,
			IsCritical: true,
			Check: func(applicant, *rules.Context) rules.Result {
				return rules.Fail("applicant below minimum age")
			},
		},
		rules.Func[applicant]{
			RuleName:  "Identity",
			RuleOrder: 1,
			Check:     func(applicant, *rules.Context) rules.Result { return rules.Pass() },
		},
	})

	assert.True(t, result.IsDeclined())
	assert.Equal(t, 0, later.calls, "rules after a critical failure must not run")

	reason, ok := result.Reason()
	require.True(t, ok)
	assert.Equal(t, "applicant below minimum age", reason)

	// Only the rules that ran are recorded.
	assert.Equal(t, []string{"Identity", "MinAge"}, ruleNames(result.RuleResults()))
}

func TestEvaluateAll_NonCriticalFailuresAccumulate(t *testing.T) {
	result := rules.EvaluateAll(applicant{}, rules.NewContext(), []rules.Rule[applicant]{
		rules.Func[applicant]{
			RuleName:  "RiskScore",
			RuleOrder: 1,
			Check: func(applicant, *rules.Context) rules.Result {
				return rules.Fail("risk score above threshold")
			},
		},
		rules.Func[applicant]{
			RuleName:  "Affordability",
			RuleOrder: 2,
			Check: func(applicant, *rules.Context) rules.Result {
				return rules.Fail("premium exceeds income ratio")
			},
		},
	})

	assert.True(t, result.RequiresManualReview())
	assert.False(t, result.IsDeclined())
	assert.Len(t, result.RuleResults(), 2)

	reason, ok := result.Reason()
	require.True(t, ok)
	assert.Equal(t, "risk score above threshold; premium exceeds income ratio", reason)
}

func TestEvaluateAll_AllPass(t *testing.T) {
	result := rules.EvaluateAll(applicant{}, rules.NewContext(), []rules.Rule[applicant]{
		rules.Func[applicant]{
			RuleName:  "MinAge",
			RuleOrder: 1,
			Check:     func(applicant, *rules.Context) rules.Result { return rules.Pass() },
		},
	})

	assert.True(t, result.IsApproved())
	_, ok := result.Reason()
	assert.False(t, ok)
}

func TestEvaluateAll_EmptyRuleSetApproves(t *testing.T) {
	result := rules.EvaluateAll(applicant{}, rules.NewContext(), nil)

	assert.True(t, result.IsApproved())
	assert.Empty(t, result.RuleResults())
}

func TestEvaluateAll_Idempotent(t *testing.T) {
	ruleSet := []rules.Rule[applicant]{
		rules.Func[applicant]{
			RuleName:  "RiskScore",
			RuleOrder: 1,
			Check: func(a applicant, _ *rules.Context) rules.Result {
				if a.age > 60 {
					return rules.Fail("elevated age risk")
				}
				return rules.Pass()
			},
		},
	}
	target := applicant{age: 70}

	first := rules.EvaluateAll(target, rules.NewContext(), ruleSet)
	second := rules.EvaluateAll(target, rules.NewContext(), ruleSet)

	assert.Equal(t, first, second)
}

func TestEvaluateAll_ContextSharedAcrossRules(t *testing.T) {
	ctx := rules.NewContext()
	ctx.Set("risk_score", 42)

	result := rules.EvaluateAll(applicant{}, ctx, []rules.Rule[applicant]{
		rules.Func[applicant]{
			RuleName:  "RiskScore",
			RuleOrder: 1,
			Check: func(_ applicant, c *rules.Context) rules.Result {
				score, ok := c.GetInt("risk_score")
				if !ok || score > 50 {
					return rules.Fail("risk score unavailable or too high")
				}
				return rules.Pass()
			},
		},
	})

	assert.True(t, result.IsApproved())
}
