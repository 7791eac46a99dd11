package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
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
	);`)
}

func createDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE documents (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		document_type TEXT NOT NULL,
		document_number TEXT,
		expiry_date DATE,
		file_path TEXT NOT NULL,
		upload_date DATETIME NOT NULL,
		verification_status TEXT NOT NULL
	);`)
}

func createLoanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loan_applications (
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
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		action TEXT NOT NULL,
		action_timestamp DATETIME NOT NULL,
		ip_address TEXT
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createDocumentTable(t, db)
	createLoanTable(t, db)
	createAuditLogTable(t, db)
}
