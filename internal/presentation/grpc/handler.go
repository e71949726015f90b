package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coverbank/underwriting-service/internal/application/dto"
	"github.com/coverbank/underwriting-service/internal/application/usecase"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
	"github.com/coverbank/underwriting-service/pkg/observability"
)

// UnderwritingHandler exposes underwriting operations over gRPC.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer

	evaluate *usecase.EvaluateApplicationUseCase
	getApp   *usecase.GetApplicationUseCase
	listRes  *usecase.ListRuleResultsUseCase
	metrics  *observability.UnderwritingMetrics
}

// NewUnderwritingHandler creates a new handler with all use-case dependencies.
func NewUnderwritingHandler(
	evaluate *usecase.EvaluateApplicationUseCase,
	getApp *usecase.GetApplicationUseCase,
	listRes *usecase.ListRuleResultsUseCase,
	metrics *observability.UnderwritingMetrics,
) *UnderwritingHandler {
	return &UnderwritingHandler{
		evaluate: evaluate,
		getApp:   getApp,
		listRes:  listRes,
		metrics:  metrics,
	}
}

// EvaluateApplication underwrites a new insurance application.
func (h *UnderwritingHandler) EvaluateApplication(
	ctx context.Context,
	req *EvaluateApplicationRequest,
) (*EvaluateApplicationResponse, error) {
	coverage, err := decimal.NewFromString(req.CoverageAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid coverage amount: %v", err)
	}
	premium, err := decimal.NewFromString(req.AnnualPremium)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual premium: %v", err)
	}
	income := decimal.Zero
	if req.AnnualIncome != "" {
		if income, err = decimal.NewFromString(req.AnnualIncome); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid annual income: %v", err)
		}
	}

	resp, err := h.evaluate.Execute(ctx, dto.EvaluateApplicationRequest{
		TenantID:       req.TenantID,
		ApplicantID:    req.ApplicantID,
		Product:        req.Product,
		CoverageAmount: coverage,
		Currency:       req.Currency,
		AnnualPremium:  premium,
		AnnualIncome:   income,
		ApplicantAge:   req.ApplicantAge,
		Country:        req.Country,
		Smoker:         req.Smoker,
	})
	if err != nil {
		return nil, mapError(err)
	}

	h.recordMetrics(resp)

	return &EvaluateApplicationResponse{Application: toWireApplication(resp)}, nil
}

// GetApplication retrieves an application by ID.
func (h *UnderwritingHandler) GetApplication(
	ctx context.Context,
	req *GetApplicationRequest,
) (*GetApplicationResponse, error) {
	resp, err := h.getApp.Execute(ctx, dto.GetApplicationRequest{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &GetApplicationResponse{Application: toWireApplication(resp)}, nil
}

// ListRuleResults returns the recorded rule outcomes for an application.
func (h *UnderwritingHandler) ListRuleResults(
	ctx context.Context,
	req *ListRuleResultsRequest,
) (*ListRuleResultsResponse, error) {
	results, err := h.listRes.Execute(ctx, dto.ListRuleResultsRequest{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &ListRuleResultsResponse{Results: toWireRuleResults(results)}, nil
}

func (h *UnderwritingHandler) recordMetrics(resp dto.ApplicationResponse) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordDecision(resp.Decision)
	for _, res := range resp.RuleResults {
		if !res.Passed {
			h.metrics.RecordRuleFailure(res.Name, res.Critical)
		}
	}
}

func mapError(err error) error {
	if errors.Is(err, valueobject.ErrApplicationNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func toWireApplication(resp dto.ApplicationResponse) *Application {
	return &Application{
		ID:             resp.ID,
		TenantID:       resp.TenantID,
		ApplicantID:    resp.ApplicantID,
		Product:        resp.Product,
		CoverageAmount: resp.CoverageAmount.String(),
		Currency:       resp.Currency,
		AnnualPremium:  resp.AnnualPremium.String(),
		ApplicantAge:   resp.ApplicantAge,
		Country:        resp.Country,
		Smoker:         resp.Smoker,
		Status:         resp.Status,
		Decision:       resp.Decision,
		DecisionReason: resp.DecisionReason,
		RuleResults:    toWireRuleResults(resp.RuleResults),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

func toWireRuleResults(results []dto.RuleResultResponse) []*RuleResult {
	if len(results) == 0 {
		return nil
	}
	out := make([]*RuleResult, 0, len(results))
	for _, res := range results {
		out = append(out, &RuleResult{
			Name:     res.Name,
			Passed:   res.Passed,
			Critical: res.Critical,
			Message:  res.Message,
		})
	}
	return out
}
