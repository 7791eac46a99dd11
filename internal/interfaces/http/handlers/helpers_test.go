package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/infrastructure/models"
	infraRepos "kyc-loan.backend/internal/infrastructure/repositories"
	"kyc-loan.backend/internal/infrastructure/reports"
	"kyc-loan.backend/internal/infrastructure/storage"
	"kyc-loan.backend/internal/interfaces/http/middleware"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/jwt"
)

const testCipherKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

// testServer wires the full HTTP stack over an in-memory sqlite database
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *jwt.TokenService
	users  *infraRepos.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Document{}, &models.LoanApplication{}, &models.AuditLog{}))

	cipher, err := crypto.NewFieldCipher(testCipherKey)
	require.NoError(t, err)
	tokens := jwt.NewTokenService("handler-test-secret", 30*time.Minute)

	dir := t.TempDir()
	store := storage.NewFileStore(dir)
	renderer := reports.NewRenderer(dir, dir)

	userRepo := infraRepos.NewUserRepository(db)
	docRepo := infraRepos.NewDocumentRepository(db)
	loanRepo := infraRepos.NewLoanRepository(db)
	auditRepo := infraRepos.NewAuditRepository(db)
	uow := infraRepos.NewUnitOfWork(db)

	authUC := usecases.NewAuthUseCase(userRepo, auditRepo, tokens)
	kycUC := usecases.NewKYCUseCase(userRepo, docRepo, auditRepo, store, cipher)
	loanUC := usecases.NewLoanUseCase(userRepo, loanRepo, auditRepo)
	adminUC := usecases.NewAdminUseCase(userRepo, docRepo, loanRepo, auditRepo, uow, renderer)
	superUC := usecases.NewSuperAdminUseCase(userRepo, docRepo, loanRepo, auditRepo, uow)
	auditUC := usecases.NewAuditUseCase(auditRepo)
	exportUC := usecases.NewExportUseCase(userRepo, loanRepo, renderer)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Auth:         NewAuthHandler(authUC),
		KYC:          NewKYCHandler(kycUC, 16<<20),
		Loan:         NewLoanHandler(loanUC),
		Admin:        NewAdminHandler(adminUC),
		Super:        NewSuperAdminHandler(superUC),
		Audit:        NewAuditHandler(auditUC),
		Export:       NewExportHandler(exportUC, dir, dir),
		Health:       NewHealthHandler(db),
		AuthRequired: middleware.AuthMiddleware(tokens),
	})

	return &testServer{router: r, db: db, tokens: tokens, users: userRepo}
}

// seedUser inserts a user directly and returns it with a bearer token
func (s *testServer) seedUser(t *testing.T, role entities.UserRole, kyc entities.KYCStatus, email string) (*entities.User, string) {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse")
	require.NoError(t, err)

	u := &entities.User{
		ID:           uuid.New(),
		FirstName:    "Seed",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		KYCStatus:    kyc,
	}
	require.NoError(t, s.users.Create(context.Background(), u))

	token, err := s.tokens.Generate(u.ID, string(role))
	require.NoError(t, err)
	return u, token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doMultipart(t *testing.T, path, token string, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
