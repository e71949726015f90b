package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverbank/underwriting-service/pkg/auth"
)

func newTestService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "coverbank",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()
	tenantID := uuid.New()

	token, err := svc.GenerateToken(userID, tenantID, []string{auth.RoleUnderwriter})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.True(t, claims.HasRole(auth.RoleUnderwriter))
	assert.False(t, claims.HasRole(auth.RoleAdmin))
	assert.Equal(t, "coverbank", claims.Issuer)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	issuer, err := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Issuer: "someone-else"})
	require.NoError(t, err)
	token, err := issuer.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	svc := newTestService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTService(auth.JWTConfig{})
	assert.Error(t, err)
}
