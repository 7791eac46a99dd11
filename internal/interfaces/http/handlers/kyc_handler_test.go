package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"kyc-loan.backend/internal/domain/entities"
)

func TestKYCUploadAndListEndpoints(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "c@example.com")

	w := s.doMultipart(t, "/api/kyc/upload-document", token, map[string]string{
		"document_type":   "passport",
		"document_number": "P1234567",
	}, "passport.jpg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodGet, "/api/kyc/documents", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	// the number comes back decrypted for the owner
	require.Contains(t, w.Body.String(), "P1234567")
}

func TestKYCUploadRejectsExtension(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "c@example.com")

	w := s.doMultipart(t, "/api/kyc/upload-document", token, map[string]string{
		"document_type": "passport",
	}, "script.sh", []byte("#!/bin/sh"))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKYCUploadIsCustomerOnly(t *testing.T) {
	s := newTestServer(t)
	_, admin := s.seedUser(t, entities.UserRoleAdmin, entities.KYCVerified, "a@example.com")

	w := s.doMultipart(t, "/api/kyc/upload-document", admin, map[string]string{
		"document_type": "passport",
	}, "passport.jpg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestKYCUploadRequiresFile(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "c@example.com")

	w := s.do(t, http.MethodPost, "/api/kyc/upload-document", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKYCStatusEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, token := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "c@example.com")

	w := s.do(t, http.MethodGet, "/api/kyc/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.Contains(t, string(data), `"kyc_status":"pending"`)
}

func TestKYCDeleteDocumentEndpoint(t *testing.T) {
	s := newTestServer(t)
	_, owner := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "owner@example.com")
	_, other := s.seedUser(t, entities.UserRoleCustomer, entities.KYCPending, "other@example.com")

	w := s.doMultipart(t, "/api/kyc/upload-document", owner, map[string]string{
		"document_type": "passport",
	}, "p.pdf", []byte("pdf"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// a stranger gets not-found, not forbidden
	w = s.do(t, http.MethodDelete, "/api/kyc/document/"+created.Data.ID, other, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/kyc/document/"+created.Data.ID, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/api/kyc/document/not-a-uuid", owner, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
