package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/rules"
)

// Context keys shared between the engine and the rule set.
const (
	ContextKeyRiskScore  = "risk_score"
	ContextKeyRiskSource = "risk_source"
)

// UnderwritingParams configures the thresholds of the standard rule set.
type UnderwritingParams struct {
	MinAge int
	MaxAge int

	// EligibleCountries are ISO 3166-1 alpha-2 codes the product is sold in.
	EligibleCountries map[string]bool

	// CoverageCeilings caps the coverage amount per product code.
	CoverageCeilings map[string]decimal.Decimal

	// SmokerCoverageCeiling caps coverage for smokers regardless of product.
	SmokerCoverageCeiling decimal.Decimal

	// MaxRiskScore is the highest bureau risk score accepted without review.
	MaxRiskScore int

	// MaxPremiumIncomeRatio is the highest annual premium to annual income
	// ratio accepted without review.
	MaxPremiumIncomeRatio decimal.Decimal
}

// DefaultUnderwritingParams returns the standard product thresholds.
func DefaultUnderwritingParams() UnderwritingParams {
	return UnderwritingParams{
		MinAge: 18,
		MaxAge: 75,
		EligibleCountries: map[string]bool{
			"US": true, "CA": true, "GB": true, "DE": true, "FR": true, "NL": true,
		},
		CoverageCeilings: map[string]decimal.Decimal{
			"TERM_LIFE":  decimal.NewFromInt(2_000_000),
			"WHOLE_LIFE": decimal.NewFromInt(1_000_000),
			"DISABILITY": decimal.NewFromInt(500_000),
		},
		SmokerCoverageCeiling: decimal.NewFromInt(750_000),
		MaxRiskScore:          70,
		MaxPremiumIncomeRatio: decimal.NewFromFloat(0.15),
	}
}

// UnderwritingRuleSet assembles the ordered rule set the service runs against
// every application. Hard eligibility checks are critical (a failure declines
// immediately); pricing-adjacent checks are non-critical and only route the
// application to manual review.
func UnderwritingRuleSet(p UnderwritingParams) []rules.Rule[model.InsuranceApplication] {
	return []rules.Rule[model.InsuranceApplication]{
		rules.Func[model.InsuranceApplication]{
			RuleName:   "MinimumAge",
			RuleOrder:  10,
			IsCritical: true,
			Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
				if app.ApplicantAge() < p.MinAge {
					return rules.Fail(fmt.Sprintf("applicant age %d below minimum %d", app.ApplicantAge(), p.MinAge))
				}
				return rules.Pass()
			},
		},
		rules.Func[model.InsuranceApplication]{
			RuleName:   "MaximumAge",
			RuleOrder:  20,
			IsCritical: true,
			Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
				if app.ApplicantAge() > p.MaxAge {
					return rules.Fail(fmt.Sprintf("applicant age %d above maximum %d", app.ApplicantAge(), p.MaxAge))
				}
				return rules.Pass()
			},
		},
		rules.Func[model.InsuranceApplication]{
			RuleName:   "CountryEligibility",
			RuleOrder:  30,
			IsCritical: true,
			Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
				if !p.EligibleCountries[app.Country()] {
					return rules.Fail(fmt.Sprintf("country %s is not eligible", app.Country()))
				}
				return rules.Pass()
			},
		},
		rules.Func[model.InsuranceApplication]{
			RuleName:   "CoverageCeiling",
			RuleOrder:  40,
			IsCritical: true,
			Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
				ceiling, ok := p.CoverageCeilings[app.Product()]
				if !ok {
					return rules.Fail(fmt.Sprintf("unknown product %s", app.Product()))
				}
				if app.CoverageAmount().GreaterThan(ceiling) {
					return rules.Fail(fmt.Sprintf(
						"coverage %s exceeds ceiling %s for product %s",
						app.CoverageAmount().StringFixed(2), ceiling.StringFixed(2), app.Product(),
					))
				}
				return rules.Pass()
			},
		},
		// The smoker ceiling only applies to smokers; applicability is
		// attached here rather than inside the rule so the same check can be
		// reused under other guards.
		rules.When(
			func(app model.InsuranceApplication) bool { return app.Smoker() },
			rules.Func[model.InsuranceApplication]{
				RuleName:  "SmokerCoverageCeiling",
				RuleOrder: 50,
				Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
					if app.CoverageAmount().GreaterThan(p.SmokerCoverageCeiling) {
						return rules.Fail(fmt.Sprintf(
							"smoker coverage %s exceeds ceiling %s",
							app.CoverageAmount().StringFixed(2), p.SmokerCoverageCeiling.StringFixed(2),
						))
					}
					return rules.Pass()
				},
			},
		),
		rules.Func[model.InsuranceApplication]{
			RuleName:  "RiskScore",
			RuleOrder: 60,
			Check: func(_ model.InsuranceApplication, ctx *rules.Context) rules.Result {
				score, ok := ctx.GetInt(ContextKeyRiskScore)
				if !ok {
					return rules.Fail("risk score unavailable")
				}
				if score > p.MaxRiskScore {
					return rules.Fail(fmt.Sprintf("risk score %d above threshold %d", score, p.MaxRiskScore))
				}
				return rules.Pass()
			},
		},
		// Affordability can only be judged when income was declared.
		rules.When(
			func(app model.InsuranceApplication) bool { return app.AnnualIncome().IsPositive() },
			rules.Func[model.InsuranceApplication]{
				RuleName:  "PremiumAffordability",
				RuleOrder: 70,
				Check: func(app model.InsuranceApplication, _ *rules.Context) rules.Result {
					ratio := app.AnnualPremium().Div(app.AnnualIncome())
					if ratio.GreaterThan(p.MaxPremiumIncomeRatio) {
						return rules.Fail(fmt.Sprintf(
							"premium to income ratio %s exceeds %s",
							ratio.StringFixed(2), p.MaxPremiumIncomeRatio.StringFixed(2),
						))
					}
					return rules.Pass()
				},
			},
		),
	}
}
