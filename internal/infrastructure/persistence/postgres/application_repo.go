package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// ApplicationRepo implements port.ApplicationRepository.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository backed by PostgreSQL.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Save persists an insurance application (upsert by ID with optimistic locking).
func (r *ApplicationRepo) Save(ctx context.Context, app model.InsuranceApplication) error {
	query := `
		INSERT INTO insurance_applications (
			id, tenant_id, applicant_id, product, coverage_amount, currency,
			annual_premium, annual_income, applicant_age, country, smoker,
			status, decision_reason, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			decision_reason = EXCLUDED.decision_reason,
			version         = insurance_applications.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE insurance_applications.version = $14
	`
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.TenantID(), app.ApplicantID(), app.Product(),
		app.CoverageAmount(), app.Currency(),
		app.AnnualPremium(), app.AnnualIncome(),
		app.ApplicantAge(), app.Country(), app.Smoker(),
		app.Status().String(), app.DecisionReason(),
		app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save insurance application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on insurance application")
	}
	return nil
}

// FindByID retrieves a single insurance application.
func (r *ApplicationRepo) FindByID(ctx context.Context, tenantID, id string) (model.InsuranceApplication, error) {
	query := `
		SELECT id, tenant_id, applicant_id, product, coverage_amount, currency,
		       annual_premium, annual_income, applicant_age, country, smoker,
		       status, decision_reason, version, created_at, updated_at
		FROM insurance_applications
		WHERE tenant_id = $1 AND id = $2
	`
	app, err := r.scanOne(ctx, query, tenantID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.InsuranceApplication{}, valueobject.ErrApplicationNotFound
	}
	return app, err
}

// FindByApplicantID retrieves all applications for a given applicant.
func (r *ApplicationRepo) FindByApplicantID(ctx context.Context, tenantID, applicantID string) ([]model.InsuranceApplication, error) {
	query := `
		SELECT id, tenant_id, applicant_id, product, coverage_amount, currency,
		       annual_premium, annual_income, applicant_age, country, smoker,
		       status, decision_reason, version, created_at, updated_at
		FROM insurance_applications
		WHERE tenant_id = $1 AND applicant_id = $2
		ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query, tenantID, applicantID)
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func (r *ApplicationRepo) scanOne(ctx context.Context, query string, args ...any) (model.InsuranceApplication, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	return scanApplication(row)
}

func (r *ApplicationRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.InsuranceApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query insurance applications: %w", err)
	}
	defer rows.Close()

	var result []model.InsuranceApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

func scanApplication(s scannable) (model.InsuranceApplication, error) {
	var (
		id, tenantID, applicantID, product string
		coverageAmount                     decimal.Decimal
		currency                           string
		annualPremium, annualIncome        decimal.Decimal
		applicantAge                       int
		country                            string
		smoker                             bool
		statusStr, decisionReason          string
		version                            int
		createdAt, updatedAt               time.Time
	)

	err := s.Scan(
		&id, &tenantID, &applicantID, &product,
		&coverageAmount, &currency,
		&annualPremium, &annualIncome,
		&applicantAge, &country, &smoker,
		&statusStr, &decisionReason,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InsuranceApplication{}, pgx.ErrNoRows
		}
		return model.InsuranceApplication{}, fmt.Errorf("scan insurance application: %w", err)
	}

	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.InsuranceApplication{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructInsuranceApplication(
		id, tenantID, applicantID, product,
		coverageAmount, currency,
		annualPremium, annualIncome,
		applicantAge, country, smoker,
		status, decisionReason,
		version, createdAt, updatedAt,
	), nil
}
