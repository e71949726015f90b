package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coverbank/underwriting-service/internal/domain/underwriting"
	pglib "github.com/coverbank/underwriting-service/pkg/postgres"
)

// RuleResultRepo implements port.RuleResultRepository.
type RuleResultRepo struct {
	pool *pgxpool.Pool
}

// NewRuleResultRepo creates a new PostgreSQL-backed rule result repository.
func NewRuleResultRepo(pool *pgxpool.Pool) *RuleResultRepo {
	return &RuleResultRepo{pool: pool}
}

// SaveRun persists one evaluation run as an ordered set of rule results.
// Each run replaces any earlier run recorded for the same application.
func (r *RuleResultRepo) SaveRun(
	ctx context.Context,
	tenantID, applicationID string,
	decision underwriting.Decision,
	results []underwriting.RuleResult,
) error {
	return pglib.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM underwriting_rule_results
			WHERE tenant_id = $1 AND application_id = $2
		`
		if _, err := tx.Exec(ctx, deleteQuery, tenantID, applicationID); err != nil {
			return fmt.Errorf("clear previous run: %w", err)
		}

		insertQuery := `
			INSERT INTO underwriting_rule_results (
				id, tenant_id, application_id, sequence,
				rule_name, passed, critical, message, decision
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`
		for seq, res := range results {
			message, _ := res.Message()
			_, err := tx.Exec(ctx, insertQuery,
				uuid.NewString(), tenantID, applicationID, seq,
				res.Name(), res.Passed(), res.Critical(), message,
				decision.String(),
			)
			if err != nil {
				return fmt.Errorf("save rule result %s: %w", res.Name(), err)
			}
		}
		return nil
	})
}

// FindByApplicationID returns the recorded rule results for an application
// in evaluation order.
func (r *RuleResultRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) ([]underwriting.RuleResult, error) {
	query := `
		SELECT rule_name, passed, critical, message
		FROM underwriting_rule_results
		WHERE tenant_id = $1 AND application_id = $2
		ORDER BY sequence ASC
	`
	rows, err := r.pool.Query(ctx, query, tenantID, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query rule results: %w", err)
	}
	defer rows.Close()

	var results []underwriting.RuleResult
	for rows.Next() {
		var (
			name, message    string
			passed, critical bool
		)
		if err := rows.Scan(&name, &passed, &critical, &message); err != nil {
			return nil, fmt.Errorf("scan rule result: %w", err)
		}
		results = append(results, underwriting.NewRuleResult(name, passed, critical, message))
	}
	return results, rows.Err()
}
