package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverbank/underwriting-service/internal/domain/model"
	"github.com/coverbank/underwriting-service/internal/domain/valueobject"
)

func newTestApplication(t *testing.T) model.InsuranceApplication {
	t.Helper()
	app, err := model.NewInsuranceApplication(
		"tenant-001", "applicant-001", "TERM_LIFE",
		decimal.NewFromInt(250_000), "USD",
		decimal.NewFromInt(1_200), decimal.NewFromInt(85_000),
		35, "US", false,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return app
}

func TestNewInsuranceApplication(t *testing.T) {
	app := newTestApplication(t)

	assert.NotEmpty(t, app.ID())
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusSubmitted))
	assert.Equal(t, 1, app.Version())

	events := app.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "underwriting.application.submitted", events[0].EventType())
	assert.Equal(t, app.ID(), events[0].AggregateID())
}

func TestNewInsuranceApplication_Validation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name string
		fn   func() (model.InsuranceApplication, error)
	}{
		{"missing tenant", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("", "a", "TERM_LIFE", decimal.NewFromInt(1), "USD", decimal.NewFromInt(1), decimal.Zero, 30, "US", false, now)
		}},
		{"missing applicant", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("t", "", "TERM_LIFE", decimal.NewFromInt(1), "USD", decimal.NewFromInt(1), decimal.Zero, 30, "US", false, now)
		}},
		{"zero coverage", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("t", "a", "TERM_LIFE", decimal.Zero, "USD", decimal.NewFromInt(1), decimal.Zero, 30, "US", false, now)
		}},
		{"zero premium", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("t", "a", "TERM_LIFE", decimal.NewFromInt(1), "USD", decimal.Zero, decimal.Zero, 30, "US", false, now)
		}},
		{"zero age", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("t", "a", "TERM_LIFE", decimal.NewFromInt(1), "USD", decimal.NewFromInt(1), decimal.Zero, 0, "US", false, now)
		}},
		{"missing country", func() (model.InsuranceApplication, error) {
			return model.NewInsuranceApplication("t", "a", "TERM_LIFE", decimal.NewFromInt(1), "USD", decimal.NewFromInt(1), decimal.Zero, 30, "", false, now)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			assert.Error(t, err)
		})
	}
}

func TestApplication_ApprovalFlow(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)

	app, err := app.SubmitForReview(now)
	require.NoError(t, err)
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusUnderReview))

	app, err = app.Approve(7, now)
	require.NoError(t, err)
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusApproved))
	assert.Empty(t, app.DecisionReason())

	events := app.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "underwriting.application.approved", events[1].EventType())
}

func TestApplication_DeclineFlow(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)

	app, err := app.SubmitForReview(now)
	require.NoError(t, err)

	app, err = app.Decline("country XX is not eligible", now)
	require.NoError(t, err)
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusDeclined))
	assert.Equal(t, "country XX is not eligible", app.DecisionReason())

	events := app.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "underwriting.application.declined", events[1].EventType())
}

func TestApplication_ReferFlow(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)

	app, err := app.SubmitForReview(now)
	require.NoError(t, err)

	app, err = app.Refer("risk score 85 above threshold 70", now)
	require.NoError(t, err)
	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusReferred))
	assert.Equal(t, "risk score 85 above threshold 70", app.DecisionReason())
}

func TestApplication_InvalidTransitions(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)

	// Decisions require UNDER_REVIEW.
	_, err := app.Approve(1, now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	_, err = app.Decline("reason", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	_, err = app.Refer("reason", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)

	app, err = app.SubmitForReview(now)
	require.NoError(t, err)

	// Re-submitting an application under review is rejected.
	_, err = app.SubmitForReview(now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestApplication_DecisionReasonsRequired(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)
	app, err := app.SubmitForReview(now)
	require.NoError(t, err)

	_, err = app.Decline("", now)
	assert.Error(t, err)
	_, err = app.Refer("", now)
	assert.Error(t, err)
}

func TestApplication_TransitionsDoNotMutateReceiver(t *testing.T) {
	now := time.Now().UTC()
	app := newTestApplication(t)

	reviewed, err := app.SubmitForReview(now)
	require.NoError(t, err)

	assert.True(t, app.Status().Equal(valueobject.ApplicationStatusSubmitted))
	assert.True(t, reviewed.Status().Equal(valueobject.ApplicationStatusUnderReview))
}

func TestApplication_ClearEvents(t *testing.T) {
	app := newTestApplication(t)
	require.NotEmpty(t, app.DomainEvents())

	cleared := app.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())

	assert.NotEmpty(t, app.DomainEvents(), "clearing must not affect the original copy")
}
