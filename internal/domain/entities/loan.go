package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LoanStatus represents a loan application's lifecycle state
type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// Defaults applied when an application omits optional terms
const (
	DefaultInterestRate = 15.0
	DefaultTenureMonths = 12
)

// LoanApplication represents a customer's loan request and its decision
type LoanApplication struct {
	ID                   uuid.UUID   `json:"id"`
	UserID               uuid.UUID   `json:"userId"`
	Amount               float64     `json:"amount"`
	Purpose              string      `json:"purpose"`
	TenureMonths         int         `json:"tenureMonths"`
	InterestRate         float64     `json:"interestRate"`
	ApplicationStatus    LoanStatus  `json:"status"`
	ApplicationDate      time.Time   `json:"applicationDate"`
	ApprovedBy           null.String `json:"approvedBy,omitempty"`
	ApprovalDate         null.Time   `json:"approvalDate,omitempty"`
	DecisionDocumentPath null.String `json:"-"`
	Notes                null.String `json:"notes,omitempty"`
}

// LoanWithApplicant is a loan joined with its owner for admin display
type LoanWithApplicant struct {
	LoanApplication
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	ApplicantPhone string `json:"applicantPhone,omitempty"`
}

// ApplyLoanInput represents input for a loan application
type ApplyLoanInput struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Purpose      string  `json:"purpose" binding:"required,min=3,max=255"`
	TenureMonths int     `json:"tenure_months" binding:"omitempty,gt=0,lte=360"`
	InterestRate float64 `json:"interest_rate" binding:"omitempty,gt=0,lte=100"`
}

// LoanDecision represents the data rendered into a decision letter
type LoanDecision struct {
	LoanID        uuid.UUID
	ApplicantName string
	Amount        float64
	Purpose       string
	TenureMonths  int
	Status        LoanStatus
	AppliedAt     time.Time
	DecidedAt     time.Time
	Notes         string
}
