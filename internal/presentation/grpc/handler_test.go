package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/coverbank/underwriting-service/internal/application/usecase"
	"github.com/coverbank/underwriting-service/internal/domain/event"
	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/service"
	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockAppRepo struct {
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.InsuranceApplication, error)
}

func (m *mockAppRepo) Save(context.Context, model.InsuranceApplication) error { return nil }

func (m *mockAppRepo) FindByID(ctx context.Context, tenantID, id string) (model.InsuranceApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.InsuranceApplication{}, valueobject.ErrApplicationNotFound
}

func (m *mockAppRepo) FindByApplicantID(context.Context, string, string) ([]model.InsuranceApplication, error) {
	return nil, nil
}

type mockResultRepo struct{}

func (m *mockResultRepo) SaveRun(context.Context, string, string, underwriting.Decision, []underwriting.RuleResult) error {
	return nil
}

func (m *mockResultRepo) FindByApplicationID(context.Context, string, string) ([]underwriting.RuleResult, error) {
	return nil, nil
}

type mockPublisher struct{}

func (m *mockPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }

type mockRiskClient struct{}

func (m *mockRiskClient) GetRiskProfile(_ context.Context, applicantID string) (valueobject.RiskProfile, error) {
	return valueobject.NewRiskProfile(applicantID, 10, "mock")
}

func newTestHandler() *UnderwritingHandler {
	evaluateUC := usecase.NewEvaluateApplicationUseCase(
		&mockAppRepo{}, &mockResultRepo{}, &mockPublisher{}, &mockRiskClient{},
		service.NewUnderwritingEngine(),
	)
	return NewUnderwritingHandler(
		evaluateUC,
		usecase.NewGetApplicationUseCase(&mockAppRepo{}),
		usecase.NewListRuleResultsUseCase(&mockResultRepo{}),
		nil,
	)
}

// --- Tests ---

func TestUnderwritingHandler_EvaluateApplication(t *testing.T) {
	validRequest := func() *EvaluateApplicationRequest {
		return &EvaluateApplicationRequest{
			TenantID:       "tenant-001",
			ApplicantID:    "applicant-001",
			Product:        "TERM_LIFE",
			CoverageAmount: "250000",
			Currency:       "USD",
			AnnualPremium:  "1200",
			AnnualIncome:   "85000",
			ApplicantAge:   35,
			Country:        "US",
		}
	}

	t.Run("approves a clean application", func(t *testing.T) {
		handler := newTestHandler()
		resp, err := handler.EvaluateApplication(context.Background(), validRequest())

		require.NoError(t, err)
		require.NotNil(t, resp.Application)
		assert.Equal(t, "APPROVED", resp.Application.Status)
		assert.Equal(t, "250000", resp.Application.CoverageAmount)
		assert.NotEmpty(t, resp.Application.RuleResults)
	})

	t.Run("rejects a malformed coverage amount", func(t *testing.T) {
		handler := newTestHandler()
		req := validRequest()
		req.CoverageAmount = "not-a-number"

		_, err := handler.EvaluateApplication(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("rejects a malformed annual premium", func(t *testing.T) {
		handler := newTestHandler()
		req := validRequest()
		req.AnnualPremium = "twelve"

		_, err := handler.EvaluateApplication(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("accepts an empty annual income", func(t *testing.T) {
		handler := newTestHandler()
		req := validRequest()
		req.AnnualIncome = ""

		resp, err := handler.EvaluateApplication(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Application.Status)
	})
}

func TestUnderwritingHandler_GetApplication(t *testing.T) {
	t.Run("maps a missing application to NotFound", func(t *testing.T) {
		handler := newTestHandler()
		_, err := handler.GetApplication(context.Background(), &GetApplicationRequest{
			TenantID:      "tenant-001",
			ApplicationID: "missing",
		})

		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
