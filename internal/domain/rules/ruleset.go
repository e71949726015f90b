package rules

import (
	"sort"

	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
)

// ---------------------------------------------------------------------------
// Rule-set evaluation
// ---------------------------------------------------------------------------

// EvaluateAll runs a rule set against the target and folds the outcomes into
// a single underwriting result.
//
// Rules are evaluated in ascending Order, ties keeping their position in the
// input slice. A failing critical rule stops the pass immediately: no further
// rules run, and the recorded rule results reflect only what ran. Failing
// non-critical rules are recorded and the pass continues, accumulating as
// many diagnostics as possible.
func EvaluateAll[T any](target T, ctx *Context, ruleSet []Rule[T]) underwriting.Result {
	ordered := make([]Rule[T], len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order() < ordered[j].Order()
	})

	results := make([]underwriting.RuleResult, 0, len(ordered))
	for _, rule := range ordered {
		res := rule.Evaluate(target, ctx)
		msg, _ := res.Message()
		results = append(results, underwriting.NewRuleResult(rule.Name(), res.OK(), rule.Critical(), msg))

		if rule.Critical() && !res.OK() {
			break
		}
	}

	return underwriting.Aggregate(results)
}
