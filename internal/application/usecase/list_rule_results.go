package usecase

import (
	"context"
	"fmt"

	"github.com/coverbank/underwriting-service/internal/application/dto"
	"github.com/coverbank/underwriting-service/internal/domain/port"
)

// ListRuleResultsUseCase reads the persisted rule audit trail of an
// application's most recent evaluation run.
type ListRuleResultsUseCase struct {
	resultRepo port.RuleResultRepository
}

// NewListRuleResultsUseCase wires dependencies.
func NewListRuleResultsUseCase(resultRepo port.RuleResultRepository) *ListRuleResultsUseCase {
	return &ListRuleResultsUseCase{resultRepo: resultRepo}
}

// Execute returns the rule results recorded for the given application.
func (uc *ListRuleResultsUseCase) Execute(
	ctx context.Context,
	req dto.ListRuleResultsRequest,
) ([]dto.RuleResultResponse, error) {
	results, err := uc.resultRepo.FindByApplicationID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("find rule results: %w", err)
	}
	return toRuleResultResponses(results), nil
}
