package grpc

// messages.go defines the wire messages for the UnderwritingService,
// derived from coverbank/underwriting/v1/underwriting.proto. It serves as a
// stand-in for buf-generated code; once `buf generate` is run, replace this
// file with the import from the generated package.

// EvaluateApplicationRequest asks for a new application to be underwritten.
type EvaluateApplicationRequest struct {
	TenantID       string `json:"tenant_id"`
	ApplicantID    string `json:"applicant_id"`
	Product        string `json:"product"`
	CoverageAmount string `json:"coverage_amount"`
	Currency       string `json:"currency"`
	AnnualPremium  string `json:"annual_premium"`
	AnnualIncome   string `json:"annual_income"`
	ApplicantAge   int    `json:"applicant_age"`
	Country        string `json:"country"`
	Smoker         bool   `json:"smoker"`
}

// EvaluateApplicationResponse carries the decided application.
type EvaluateApplicationResponse struct {
	Application *Application `json:"application"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// GetApplicationResponse carries a stored application.
type GetApplicationResponse struct {
	Application *Application `json:"application"`
}

// ListRuleResultsRequest identifies an application whose audit trail to read.
type ListRuleResultsRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ListRuleResultsResponse carries the recorded rule outcomes in
// evaluation order.
type ListRuleResultsResponse struct {
	Results []*RuleResult `json:"results"`
}

// Application is the wire representation of an insurance application.
type Application struct {
	ID             string        `json:"id"`
	TenantID       string        `json:"tenant_id"`
	ApplicantID    string        `json:"applicant_id"`
	Product        string        `json:"product"`
	CoverageAmount string        `json:"coverage_amount"`
	Currency       string        `json:"currency"`
	AnnualPremium  string        `json:"annual_premium"`
	ApplicantAge   int           `json:"applicant_age"`
	Country        string        `json:"country"`
	Smoker         bool          `json:"smoker"`
	Status         string        `json:"status"`
	Decision       string        `json:"decision,omitempty"`
	DecisionReason string        `json:"decision_reason,omitempty"`
	RuleResults    []*RuleResult `json:"rule_results,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

// RuleResult is the wire representation of one rule outcome.
type RuleResult struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Critical bool   `json:"critical"`
	Message  string `json:"message,omitempty"`
}
