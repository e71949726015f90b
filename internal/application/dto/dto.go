package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// EvaluateApplicationRequest carries the data needed to underwrite a new
// insurance application.
type EvaluateApplicationRequest struct {
	TenantID       string          `json:"tenant_id"`
	ApplicantID    string          `json:"applicant_id"`
	Product        string          `json:"product"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	Currency       string          `json:"currency"`
	AnnualPremium  decimal.Decimal `json:"annual_premium"`
	AnnualIncome   decimal.Decimal `json:"annual_income"`
	ApplicantAge   int             `json:"applicant_age"`
	Country        string          `json:"country"`
	Smoker         bool            `json:"smoker"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ListRuleResultsRequest identifies an application whose audit trail to read.
type ListRuleResultsRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RuleResultResponse is the external representation of one rule outcome.
type RuleResultResponse struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Critical bool   `json:"critical"`
	Message  string `json:"message,omitempty"`
}

// ApplicationResponse is the external representation of an application and
// its underwriting outcome.
type ApplicationResponse struct {
	ID             string               `json:"id"`
	TenantID       string               `json:"tenant_id"`
	ApplicantID    string               `json:"applicant_id"`
	Product        string               `json:"product"`
	CoverageAmount decimal.Decimal      `json:"coverage_amount"`
	Currency       string               `json:"currency"`
	AnnualPremium  decimal.Decimal      `json:"annual_premium"`
	ApplicantAge   int                  `json:"applicant_age"`
	Country        string               `json:"country"`
	Smoker         bool                 `json:"smoker"`
	Status         string               `json:"status"`
	Decision       string               `json:"decision,omitempty"`
	DecisionReason string               `json:"decision_reason,omitempty"`
	RuleResults    []RuleResultResponse `json:"rule_results,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
