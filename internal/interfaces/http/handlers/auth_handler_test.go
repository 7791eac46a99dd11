package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

func TestRegisterEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"first_name":    "Amina",
		"last_name":     "Diallo",
		"email":         "amina@example.com",
		"password":      "supersecret1",
		"date_of_birth": "1990-06-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	require.Equal(t, "success", env.Status)

	// same email again conflicts
	w = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"first_name": "Other",
		"last_name":  "Person",
		"email":      "amina@example.com",
		"password":   "supersecret1",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, domainerrors.CodeDuplicateEmail, decodeEnvelope(t, w).Code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	cases := []map[string]string{
		{"first_name": "A", "last_name": "B", "email": "not-an-email", "password": "supersecret1"},
		{"first_name": "A", "last_name": "B", "email": "a@example.com", "password": "short"},
		{"last_name": "B", "email": "a@example.com", "password": "supersecret1"},
		{"first_name": "A", "last_name": "B", "email": "a@example.com", "password": "supersecret1", "date_of_birth": "15/06/1990"},
	}
	for _, body := range cases {
		w := s.do(t, http.MethodPost, "/api/auth/register", "", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "c@example.com")

	w := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "c@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "token")

	w = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "c@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, domainerrors.CodeInvalidCredentials, decodeEnvelope(t, w).Code)
}

func TestVerifyEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCVerified, "c@example.com")

	w := s.do(t, http.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "c@example.com")

	w = s.do(t, http.MethodGet, "/api/auth/verify", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCVerified, "c@example.com")

	w := s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
