package service

import (
	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/rules"
	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// UnderwritingEngine – domain service running the rule set
// ---------------------------------------------------------------------------

// UnderwritingEngine evaluates insurance applications against the configured
// rule set. The rule set is assembled once and reused across evaluations.
type UnderwritingEngine struct {
	ruleSet []rules.Rule[model.InsuranceApplication]
}

// NewUnderwritingEngine returns an engine with the default thresholds.
func NewUnderwritingEngine() *UnderwritingEngine {
	return NewUnderwritingEngineWithParams(DefaultUnderwritingParams())
}

// NewUnderwritingEngineWithParams returns an engine with custom thresholds.
func NewUnderwritingEngineWithParams(p UnderwritingParams) *UnderwritingEngine {
	return &UnderwritingEngine{ruleSet: UnderwritingRuleSet(p)}
}

// Evaluate runs the rule set against the application. The risk profile is
// seeded into the shared evaluation context so the bureau-backed rules can
// read it.
func (e *UnderwritingEngine) Evaluate(
	app model.InsuranceApplication,
	profile valueobject.RiskProfile,
) underwriting.Result {
	ctx := rules.NewContext()
	ctx.Set(ContextKeyRiskScore, profile.Score)
	ctx.Set(ContextKeyRiskSource, profile.Source)

	return rules.EvaluateAll(app, ctx, e.ruleSet)
}
