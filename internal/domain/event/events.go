package event

import (
	"github.com/shopspring/decimal"

	"github.com/coverbank/underwriting-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "InsuranceApplication"

// ---------------------------------------------------------------------------
// Insurance Application Events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicantID    string          `json:"applicant_id"`
	Product        string          `json:"product"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	Currency       string          `json:"currency"`
}

func NewApplicationSubmitted(
	applicationID, tenantID, applicantID, product string,
	coverageAmount decimal.Decimal, currency string,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:      events.NewBaseEvent("underwriting.application.submitted", applicationID, aggregateType, tenantID),
		ApplicantID:    applicantID,
		Product:        product,
		CoverageAmount: coverageAmount,
		Currency:       currency,
	}
}

// ApplicationApproved is raised when underwriting approves an application.
type ApplicationApproved struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	RulesPassed int    `json:"rules_passed"`
}

func NewApplicationApproved(applicationID, tenantID, applicantID string, rulesPassed int) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:   events.NewBaseEvent("underwriting.application.approved", applicationID, aggregateType, tenantID),
		ApplicantID: applicantID,
		RulesPassed: rulesPassed,
	}
}

// ApplicationReferred is raised when an application needs a human decision.
type ApplicationReferred struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Reason      string `json:"reason"`
}

func NewApplicationReferred(applicationID, tenantID, applicantID, reason string) ApplicationReferred {
	return ApplicationReferred{
		BaseEvent:   events.NewBaseEvent("underwriting.application.referred", applicationID, aggregateType, tenantID),
		ApplicantID: applicantID,
		Reason:      reason,
	}
}

// ApplicationDeclined is raised when underwriting declines an application.
type ApplicationDeclined struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Reason      string `json:"reason"`
}

func NewApplicationDeclined(applicationID, tenantID, applicantID, reason string) ApplicationDeclined {
	return ApplicationDeclined{
		BaseEvent:   events.NewBaseEvent("underwriting.application.declined", applicationID, aggregateType, tenantID),
		ApplicantID: applicantID,
		Reason:      reason,
	}
}
