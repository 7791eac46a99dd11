package usecases

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"kyc-loan.backend/internal/domain/entities"
	"kyc-loan.backend/internal/domain/repositories"
	infraRepos "kyc-loan.backend/internal/infrastructure/repositories"
	"kyc-loan.backend/internal/infrastructure/reports"
	"kyc-loan.backend/pkg/crypto"
	"kyc-loan.backend/pkg/jwt"
)

const testCipherKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

// testEnv wires the use cases over an in-memory sqlite database
type testEnv struct {
	db        *gorm.DB
	userRepo  repositories.UserRepository
	docRepo   repositories.DocumentRepository
	loanRepo  repositories.LoanRepository
	auditRepo repositories.AuditRepository
	uow       repositories.UnitOfWork
	cipher    *crypto.FieldCipher
	tokens    *jwt.TokenService
	store     *fakeStore
	renderer  *fakeRenderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")

	for _, q := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT,
			date_of_birth DATE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			kyc_status TEXT NOT NULL,
			verified_by TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE documents (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			document_type TEXT NOT NULL,
			document_number TEXT,
			expiry_date DATE,
			file_path TEXT NOT NULL,
			upload_date DATETIME NOT NULL,
			verification_status TEXT NOT NULL
		);`,
		`CREATE TABLE loan_applications (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			amount REAL NOT NULL,
			purpose TEXT NOT NULL,
			tenure_months INTEGER NOT NULL,
			interest_rate REAL NOT NULL,
			application_status TEXT NOT NULL,
			application_date DATETIME NOT NULL,
			approved_by TEXT,
			approval_date DATETIME,
			decision_document_path TEXT,
			notes TEXT
		);`,
		`CREATE TABLE audit_logs (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			action_timestamp DATETIME NOT NULL,
			ip_address TEXT
		);`,
	} {
		require.NoError(t, db.Exec(q).Error)
	}

	cipher, err := crypto.NewFieldCipher(testCipherKey)
	require.NoError(t, err)

	return &testEnv{
		db:        db,
		userRepo:  infraRepos.NewUserRepository(db),
		docRepo:   infraRepos.NewDocumentRepository(db),
		loanRepo:  infraRepos.NewLoanRepository(db),
		auditRepo: infraRepos.NewAuditRepository(db),
		uow:       infraRepos.NewUnitOfWork(db),
		cipher:    cipher,
		tokens:    jwt.NewTokenService("test-secret", 30*time.Minute),
		store:     &fakeStore{},
		renderer:  &fakeRenderer{},
	}
}

func (e *testEnv) createUser(t *testing.T, role entities.UserRole, kyc entities.KYCStatus, email string) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword("correct-horse")
	require.NoError(t, err)
	u := &entities.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		KYCStatus:    kyc,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), u))
	return u
}

func (e *testEnv) lastAuditAction(t *testing.T) string {
	t.Helper()
	entries, err := e.auditRepo.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0].Action
}

// fakeStore records saved and removed paths without touching disk
type fakeStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (s *fakeStore) SaveUpload(ownerID uuid.UUID, header *multipart.FileHeader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	path := fmt.Sprintf("uploads/%s_%d", ownerID, len(s.saved))
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeStore) Remove(path string) error {
	s.removed = append(s.removed, path)
	return nil
}

// fakeRenderer stands in for the PDF/Excel/CSV renderers
type fakeRenderer struct {
	letterErr error
	rendered  []*entities.LoanDecision
}

func (r *fakeRenderer) RenderLoanDecision(d *entities.LoanDecision) (string, error) {
	if r.letterErr != nil {
		return "", r.letterErr
	}
	r.rendered = append(r.rendered, d)
	return fmt.Sprintf("letters/loan_%s_%s.pdf", d.LoanID, d.Status), nil
}

func (r *fakeRenderer) RenderExcel(sheets []reports.Sheet, now time.Time) (string, error) {
	return fmt.Sprintf("reports/full_report_%s.xlsx", now.Format("20060102_150405")), nil
}

func (r *fakeRenderer) RenderCSV(label string, headers []string, rows [][]string, now time.Time) (string, error) {
	return fmt.Sprintf("reports/%s_export_%s.csv", label, now.Format("20060102_150405")), nil
}
