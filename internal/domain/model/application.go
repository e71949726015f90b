package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coverbank/underwriting-service/internal/domain/event"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InsuranceApplication aggregate root
// ---------------------------------------------------------------------------

// InsuranceApplication is an immutable aggregate. Every mutation returns a
// new copy.
type InsuranceApplication struct {
	id             string
	tenantID       string
	applicantID    string
	product        string
	coverageAmount decimal.Decimal
	currency       string
	annualPremium  decimal.Decimal
	annualIncome   decimal.Decimal
	applicantAge   int
	country        string
	smoker         bool
	status         valueobject.ApplicationStatus
	decisionReason string
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewInsuranceApplication creates a brand-new application in SUBMITTED status.
func NewInsuranceApplication(
	tenantID, applicantID, product string,
	coverageAmount decimal.Decimal,
	currency string,
	annualPremium, annualIncome decimal.Decimal,
	applicantAge int,
	country string,
	smoker bool,
	now time.Time,
) (InsuranceApplication, error) {
	if tenantID == "" {
		return InsuranceApplication{}, errors.New("tenant ID is required")
	}
	if applicantID == "" {
		return InsuranceApplication{}, errors.New("applicant ID is required")
	}
	if product == "" {
		return InsuranceApplication{}, errors.New("product is required")
	}
	if coverageAmount.LessThanOrEqual(decimal.Zero) {
		return InsuranceApplication{}, errors.New("coverage amount must be positive")
	}
	if currency == "" {
		return InsuranceApplication{}, errors.New("currency is required")
	}
	if annualPremium.LessThanOrEqual(decimal.Zero) {
		return InsuranceApplication{}, errors.New("annual premium must be positive")
	}
	if applicantAge <= 0 {
		return InsuranceApplication{}, errors.New("applicant age must be positive")
	}
	if country == "" {
		return InsuranceApplication{}, errors.New("country is required")
	}

	id := uuid.New().String()
	app := InsuranceApplication{
		id:             id,
		tenantID:       tenantID,
		applicantID:    applicantID,
		product:        product,
		coverageAmount: coverageAmount,
		currency:       currency,
		annualPremium:  annualPremium,
		annualIncome:   annualIncome,
		applicantAge:   applicantAge,
		country:        country,
		smoker:         smoker,
		status:         valueobject.ApplicationStatusSubmitted,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	app.domainEvents = append(app.domainEvents, event.NewApplicationSubmitted(
		id, tenantID, applicantID, product, coverageAmount, currency,
	))
	return app, nil
}

// ReconstructInsuranceApplication rebuilds an aggregate from persistence
// without side-effects.
func ReconstructInsuranceApplication(
	id, tenantID, applicantID, product string,
	coverageAmount decimal.Decimal,
	currency string,
	annualPremium, annualIncome decimal.Decimal,
	applicantAge int,
	country string,
	smoker bool,
	status valueobject.ApplicationStatus,
	decisionReason string,
	version int,
	createdAt, updatedAt time.Time,
) InsuranceApplication {
	return InsuranceApplication{
		id:             id,
		tenantID:       tenantID,
		applicantID:    applicantID,
		product:        product,
		coverageAmount: coverageAmount,
		currency:       currency,
		annualPremium:  annualPremium,
		annualIncome:   annualIncome,
		applicantAge:   applicantAge,
		country:        country,
		smoker:         smoker,
		status:         status,
		decisionReason: decisionReason,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// SubmitForReview transitions SUBMITTED -> UNDER_REVIEW.
func (a InsuranceApplication) SubmitForReview(now time.Time) (InsuranceApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusSubmitted) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusUnderReview
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Approve transitions UNDER_REVIEW -> APPROVED and emits ApplicationApproved.
func (a InsuranceApplication) Approve(rulesPassed int, now time.Time) (InsuranceApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.decisionReason = ""
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, a.tenantID, a.applicantID, rulesPassed,
	))
	return next, nil
}

// Refer transitions UNDER_REVIEW -> REFERRED and emits ApplicationReferred.
func (a InsuranceApplication) Refer(reason string, now time.Time) (InsuranceApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	if reason == "" {
		return a, errors.New("referral reason is required")
	}
	next := a
	next.status = valueobject.ApplicationStatusReferred
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationReferred(
		a.id, a.tenantID, a.applicantID, reason,
	))
	return next, nil
}

// Decline transitions UNDER_REVIEW -> DECLINED and emits ApplicationDeclined.
func (a InsuranceApplication) Decline(reason string, now time.Time) (InsuranceApplication, error) {
	if !a.status.Equal(valueobject.ApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	if reason == "" {
		return a, errors.New("decline reason is required")
	}
	next := a
	next.status = valueobject.ApplicationStatusDeclined
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDeclined(
		a.id, a.tenantID, a.applicantID, reason,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a InsuranceApplication) ID() string                              { return a.id }
func (a InsuranceApplication) TenantID() string                        { return a.tenantID }
func (a InsuranceApplication) ApplicantID() string                     { return a.applicantID }
func (a InsuranceApplication) Product() string                         { return a.product }
func (a InsuranceApplication) CoverageAmount() decimal.Decimal         { return a.coverageAmount }
func (a InsuranceApplication) Currency() string                        { return a.currency }
func (a InsuranceApplication) AnnualPremium() decimal.Decimal          { return a.annualPremium }
func (a InsuranceApplication) AnnualIncome() decimal.Decimal           { return a.annualIncome }
func (a InsuranceApplication) ApplicantAge() int                       { return a.applicantAge }
func (a InsuranceApplication) Country() string                         { return a.country }
func (a InsuranceApplication) Smoker() bool                            { return a.smoker }
func (a InsuranceApplication) Status() valueobject.ApplicationStatus   { return a.status }
func (a InsuranceApplication) DecisionReason() string                  { return a.decisionReason }
func (a InsuranceApplication) Version() int                            { return a.version }
func (a InsuranceApplication) CreatedAt() time.Time                    { return a.createdAt }
func (a InsuranceApplication) UpdatedAt() time.Time                    { return a.updatedAt }
func (a InsuranceApplication) DomainEvents() []event.DomainEvent       { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a InsuranceApplication) ClearEvents() InsuranceApplication {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
