package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := svc.Generate(userID, "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "customer", claims.Role)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Generate(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)

	token, err := svc.Generate(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 30*time.Minute)
	verifier := NewTokenService("secret-b", 30*time.Minute)

	token, err := issuer.Generate(uuid.New(), "customer")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", 30*time.Minute)
	_, err := svc.Validate("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
