package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := newTestServer(t)
	_, customer := s.seedUser(t, entities.UserRoleCustomer, entities.KYCVerified, "c@example.com")

	for _, path := range []string{
		"/api/admin/pending-kyc",
		"/api/admin/loan-requests",
		"/api/admin/statistics",
		"/api/audit/logs",
	} {
		w := s.do(t, http.MethodGet, path, customer, nil)
		require.Equal(t, http.StatusForbidden, w.Code, "path %s", path)
	}

	w := s.do(t, http.MethodGet, "/api/admin/pending-kyc", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyKYCEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")
	target, _ := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "t@example.com")

	w := s.do(t, http.MethodPost, "/api/admin/verify-kyc/"+target.ID.String(), admin, map[string]string{
		"action": "approve",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "verified")

	// second verdict conflicts
	w = s.do(t, http.MethodPost, "/api/admin/verify-kyc/"+target.ID.String(), admin, map[string]string{
		"action": "reject",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, domainerrors.CodeAlreadyDecided, decodeEnvelope(t, w).Code)
}

func TestVerifyKYCEndpointValidation(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")
	target, _ := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "t@example.com")

	w := s.do(t, http.MethodPost, "/api/admin/verify-kyc/not-a-uuid", admin, map[string]string{"action": "approve"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/verify-kyc/"+target.ID.String(), admin, map[string]string{"action": "maybe"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoanDecisionEndpoints(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")
	_, customer := s.seedUser(t, entities.UserRoleCustomer, entities.KYCVerified, "c@example.com")

	approveID := applyLoan(t, s, customer)
	rejectID := applyLoan(t, s, customer)

	w := s.do(t, http.MethodPost, "/api/admin/approve-loan/"+approveID, admin, map[string]string{
		"notes": "Income verified",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "approved")

	// empty body is fine for a rejection
	w = s.do(t, http.MethodPost, "/api/admin/reject-loan/"+rejectID, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rejected")

	// re-deciding either conflicts
	w = s.do(t, http.MethodPost, "/api/admin/reject-loan/"+approveID, admin, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// the pending queue is now empty
	w = s.do(t, http.MethodGet, "/api/admin/loan-requests", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodeEnvelope(t, w).Data)
}

func TestStatisticsEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")
	_, customer := s.seedUser(t, entities.UserRoleCustomer, entities.KYCVerified, "c@example.com")
	s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "p@example.com")
	applyLoan(t, s, customer)

	w := s.do(t, http.MethodGet, "/api/admin/statistics", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.Contains(t, string(data), `"total_customers":2`)
	require.Contains(t, string(data), `"pending_kyc":1`)
	require.Contains(t, string(data), `"pending_loans":1`)
}

func TestAuditLogsEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")

	// generate a couple of audited actions
	w := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "a@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/audit/logs", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), entities.ActionLogin)
}
