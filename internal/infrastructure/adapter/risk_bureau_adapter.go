package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Risk Bureau Adapter - structured for real integration
// ---------------------------------------------------------------------------

// Bureau identifies a risk data provider.
type Bureau string

const (
	BureauLexisNexis Bureau = "LEXISNEXIS"
	BureauVerisk     Bureau = "VERISK"
	BureauMIB        Bureau = "MIB"
)

// RiskBureauConfig holds configuration for the risk bureau adapter.
type RiskBureauConfig struct {
	// PrimaryBureau is the preferred provider for risk pulls.
	PrimaryBureau Bureau
	// BaseURL is the base URL for the bureau API.
	BaseURL string
	// APIKey is the authentication credential for the bureau API.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
	// MaxRetries is the maximum number of retry attempts on transient failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff duration in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultRiskBureauConfig returns sensible defaults for development.
func DefaultRiskBureauConfig() RiskBureauConfig {
	return RiskBureauConfig{
		PrimaryBureau:  BureauLexisNexis,
		BaseURL:        "https://api.riskbureau.example.com",
		APIKey:         "dev-api-key",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// RiskReport represents a parsed risk report from a bureau.
type RiskReport struct {
	Bureau        Bureau
	ApplicantID   string
	Score         int // 0-100, higher is riskier
	ScoreModel    string
	ReportDate    time.Time
	MedicalFlags  int
	ClaimHistory  int
	RecentInquiry time.Time
}

// HTTPClient defines the interface for making requests to risk bureaus.
// This enables testing with mock implementations.
type HTTPClient interface {
	// FetchRiskReport retrieves a risk report from the specified bureau.
	FetchRiskReport(ctx context.Context, bureau Bureau, applicantID string) (RiskReport, error)
}

// RiskBureauAdapter is a structured adapter that simulates risk bureau API
// calls. It implements port.RiskProfileClient and is designed to be swapped
// with a real HTTP-based implementation when integrating with a provider.
type RiskBureauAdapter struct {
	config RiskBureauConfig
	client HTTPClient // nil = use simulated responses
}

// NewRiskBureauAdapter creates a new adapter with the given configuration.
// If client is nil, simulated responses are used (suitable for development/testing).
func NewRiskBureauAdapter(config RiskBureauConfig, client HTTPClient) *RiskBureauAdapter {
	return &RiskBureauAdapter{
		config: config,
		client: client,
	}
}

// GetRiskProfile retrieves a risk profile for the given applicant.
// It implements port.RiskProfileClient.
//
// When a real HTTPClient is provided, the adapter calls the bureau API with
// retry logic. Otherwise, it returns a deterministic simulated profile.
func (a *RiskBureauAdapter) GetRiskProfile(ctx context.Context, applicantID string) (valueobject.RiskProfile, error) {
	if applicantID == "" {
		return valueobject.RiskProfile{}, fmt.Errorf("applicant ID is required")
	}

	if a.client != nil {
		report, err := a.fetchWithRetry(ctx, applicantID)
		if err != nil {
			return valueobject.RiskProfile{}, fmt.Errorf("risk bureau request failed: %w", err)
		}
		return valueobject.NewRiskProfile(applicantID, report.Score, string(report.Bureau))
	}

	report := a.simulateRiskReport(applicantID)
	return valueobject.NewRiskProfile(applicantID, report.Score, string(report.Bureau))
}

// GetFullReport retrieves a complete risk report for the applicant. This
// method is not part of the minimal RiskProfileClient port but provides
// additional data for enhanced underwriting.
func (a *RiskBureauAdapter) GetFullReport(ctx context.Context, applicantID string) (RiskReport, error) {
	if applicantID == "" {
		return RiskReport{}, fmt.Errorf("applicant ID is required")
	}

	if a.client != nil {
		return a.fetchWithRetry(ctx, applicantID)
	}

	return a.simulateRiskReport(applicantID), nil
}

// fetchWithRetry calls the bureau API with exponential backoff retry logic.
func (a *RiskBureauAdapter) fetchWithRetry(ctx context.Context, applicantID string) (RiskReport, error) {
	var lastErr error

	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
			select {
			case <-ctx.Done():
				return RiskReport{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		report, err := a.client.FetchRiskReport(ctx, a.config.PrimaryBureau, applicantID)
		if err == nil {
			return report, nil
		}
		lastErr = err
	}

	return RiskReport{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

// simulateRiskReport generates a deterministic simulated risk report.
// The score and attributes are derived from the applicant ID hash, making
// results reproducible for testing.
func (a *RiskBureauAdapter) simulateRiskReport(applicantID string) RiskReport {
	h := sha256.Sum256([]byte(applicantID))
	score := int(binary.BigEndian.Uint32(h[:4]) % 101) // range [0, 100]

	medicalFlags := int(binary.BigEndian.Uint16(h[4:6]) % 4)
	claimHistory := int(binary.BigEndian.Uint16(h[6:8]) % 6)

	return RiskReport{
		Bureau:        a.config.PrimaryBureau,
		ApplicantID:   applicantID,
		Score:         score,
		ScoreModel:    "CB-RISK-1",
		ReportDate:    time.Now().UTC(),
		MedicalFlags:  medicalFlags,
		ClaimHistory:  claimHistory,
		RecentInquiry: time.Now().AddDate(0, -1, 0),
	}
}
