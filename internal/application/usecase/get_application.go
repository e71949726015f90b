package usecase

import (
	"context"
	"fmt"

	"github.com/coverbank/underwriting-service/internal/application/dto"
	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/port"
)

// GetApplicationUseCase retrieves an insurance application by ID.
type GetApplicationUseCase struct {
	appRepo port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute returns an application response for the given ID.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	return toStoredApplicationResponse(app), nil
}

// toStoredApplicationResponse maps a persisted aggregate without attaching an
// evaluation run.
func toStoredApplicationResponse(app model.InsuranceApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
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
		DecisionReason: app.DecisionReason(),
		CreatedAt:      app.CreatedAt(),
		UpdatedAt:      app.UpdatedAt(),
	}
}
