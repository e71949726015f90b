package port

import (
	"context"

	"github.com/coverbank/underwriting-service/internal/domain/event"
	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationRepository persists and retrieves insurance applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.InsuranceApplication) error
	FindByID(ctx context.Context, tenantID, id string) (model.InsuranceApplication, error)
	FindByApplicantID(ctx context.Context, tenantID, applicantID string) ([]model.InsuranceApplication, error)
}

// RuleResultRepository persists the per-rule audit trail of evaluation runs.
type RuleResultRepository interface {
	SaveRun(ctx context.Context, tenantID, applicationID string, decision underwriting.Decision, results []underwriting.RuleResult) error
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) ([]underwriting.RuleResult, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// RiskProfileClient fetches applicant risk data from the risk bureau.
type RiskProfileClient interface {
	GetRiskProfile(ctx context.Context, applicantID string) (valueobject.RiskProfile, error)
}
