package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/coverbank/underwriting-service/internal/application/dto"
	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/port"
	"github.com/coverbank/underwriting-service/internal/domain/service"
	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
)

// EvaluateApplicationUseCase orchestrates application intake, risk profile
// fetching, rule evaluation, and decision recording.
type EvaluateApplicationUseCase struct {
	appRepo     port.ApplicationRepository
	resultRepo  port.RuleResultRepository
	publisher   port.EventPublisher
	riskClient  port.RiskProfileClient
	underwriter *service.UnderwritingEngine
}

// NewEvaluateApplicationUseCase wires dependencies.
func NewEvaluateApplicationUseCase(
	appRepo port.ApplicationRepository,
	resultRepo port.RuleResultRepository,
	publisher port.EventPublisher,
	riskClient port.RiskProfileClient,
	underwriter *service.UnderwritingEngine,
) *EvaluateApplicationUseCase {
	return &EvaluateApplicationUseCase{
		appRepo:     appRepo,
		resultRepo:  resultRepo,
		publisher:   publisher,
		riskClient:  riskClient,
		underwriter: underwriter,
	}
}

// Execute creates, underwrites, and persists an insurance application.
func (uc *EvaluateApplicationUseCase) Execute(
	ctx context.Context,
	req dto.EvaluateApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Create the application aggregate.
	app, err := model.NewInsuranceApplication(
		req.TenantID, req.ApplicantID, req.Product,
		req.CoverageAmount, req.Currency,
		req.AnnualPremium, req.AnnualIncome,
		req.ApplicantAge, req.Country, req.Smoker,
		now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	// 2. Move it into review.
	app, err = app.SubmitForReview(now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("submit for review: %w", err)
	}

	// 3. Fetch the applicant's risk profile.
	profile, err := uc.riskClient.GetRiskProfile(ctx, req.ApplicantID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("fetch risk profile: %w", err)
	}

	// 4. Run the rule set.
	result := uc.underwriter.Evaluate(app, profile)

	// 5. Apply the decision.
	app, err = applyDecision(app, result, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	// 6. Persist the aggregate and the rule audit trail.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.resultRepo.SaveRun(ctx, app.TenantID(), app.ID(), result.Decision(), result.RuleResults()); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save rule results: %w", err)
	}

	// 7. Publish domain events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app, result), nil
}

func applyDecision(
	app model.InsuranceApplication,
	result underwriting.Result,
	now time.Time,
) (model.InsuranceApplication, error) {
	switch {
	case result.IsApproved():
		return app.Approve(len(result.RuleResults()), now)
	case result.RequiresManualReview():
		reason, _ := result.Reason()
		return app.Refer(reason, now)
	default:
		reason, _ := result.Reason()
		return app.Decline(reason, now)
	}
}

func toApplicationResponse(app model.InsuranceApplication, result underwriting.Result) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID(),
		TenantID:       app.TenantID(),
		ApplicantID:    app.ApplicantID(),
		Product:        app.Product(),
		CoverageAmount: app.CoverageAmount(),
		Currency:       app.Currency(),
		AnnualPremium:  app.AnnualPremium(),
		ApplicantAge:   app.ApplicantAge(),
		Country:        app.Country(),
		Smoker:         app.Smoker(),
		Status:         app.Status().String(),
		Decision:       result.Decision().String(),
		DecisionReason: app.DecisionReason(),
		RuleResults:    toRuleResultResponses(result.RuleResults()),
		CreatedAt:      app.CreatedAt(),
		UpdatedAt:      app.UpdatedAt(),
	}
	return resp
}

func toRuleResultResponses(results []underwriting.RuleResult) []dto.RuleResultResponse {
	if len(results) == 0 {
		return nil
	}
	out := make([]dto.RuleResultResponse, 0, len(results))
	for _, r := range results {
		msg, _ := r.Message()
		out = append(out, dto.RuleResultResponse{
			Name:     r.Name(),
			Passed:   r.Passed(),
			Critical: r.Critical(),
			Message:  msg,
		})
	}
	return out
}
