package usecases

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/domain/repositories"
	"kyc-loan.backend/internal/infrastructure/reports"
	"kyc-loan.backend/pkg/logger"
)

// TabularRenderer writes spreadsheet and CSV exports to the reports directory
type TabularRenderer interface {
	RenderExcel(sheets []reports.Sheet, now time.Time) (string, error)
	RenderCSV(label string, headers []string, rows [][]string, now time.Time) (string, error)
}

// ExportUseCase assembles customer and loan data into downloadable reports
type ExportUseCase struct {
	userRepo repositories.UserRepository
	loanRepo repositories.LoanRepository
	renderer TabularRenderer
}

func NewExportUseCase(userRepo repositories.UserRepository, loanRepo repositories.LoanRepository, renderer TabularRenderer) *ExportUseCase {
	return &ExportUseCase{
		userRepo: userRepo,
		loanRepo: loanRepo,
		renderer: renderer,
	}
}

var customerHeaders = []string{"Name", "Email", "Phone", "KYC Status", "Registered"}

var loanHeaders = []string{"Loan ID", "Applicant", "Email", "Amount", "Purpose", "Term (months)", "Interest Rate", "Status", "Application Date"}

func (uc *ExportUseCase) customerRows(ctx context.Context) ([][]string, error) {
	customers, err := uc.userRepo.ListByRole(ctx, entities.UserRoleCustomer)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.FullName(),
			c.Email,
			c.Phone,
			string(c.KYCStatus),
			c.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

func (uc *ExportUseCase) loanRows(ctx context.Context) ([][]string, error) {
	var all []*entities.LoanWithApplicant
	for _, status := range []entities.LoanStatus{entities.LoanPending, entities.LoanApproved, entities.LoanRejected} {
		loans, err := uc.loanRepo.ListByStatusWithApplicant(ctx, status)
		if err != nil {
			return nil, err
		}
		all = append(all, loans...)
	}

	rows := make([][]string, 0, len(all))
	for _, l := range all {
		rows = append(rows, []string{
			l.ID.String(),
			l.ApplicantName,
			l.ApplicantEmail,
			fmt.Sprintf("%.2f", l.Amount),
			l.Purpose,
			strconv.Itoa(l.TenureMonths),
			fmt.Sprintf("%.2f", l.InterestRate),
			string(l.ApplicationStatus),
			l.ApplicationDate.Format("2006-01-02"),
		})
	}
	return rows, nil
}

// ExportExcel writes a workbook with a verifications sheet and a loan
// requests sheet and returns the file path.
func (uc *ExportUseCase) ExportExcel(ctx context.Context) (string, error) {
	customerRows, err := uc.customerRows(ctx)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}
	loanRows, err := uc.loanRows(ctx)
	if err != nil {
		return "", domainerrors.InternalError(err)
	}

	toCells := func(rows [][]string) [][]interface{} {
		out := make([][]interface{}, len(rows))
		for i, row := range rows {
			cells := make([]interface{}, len(row))
			for j, v := range row {
				cells[j] = v
			}
			out[i] = cells
		}
		return out
	}

	path, err := uc.renderer.RenderExcel([]reports.Sheet{
		{Name: "Verifications", Headers: customerHeaders, Rows: toCells(customerRows)},
		{Name: "Loan Requests", Headers: loanHeaders, Rows: toCells(loanRows)},
	}, time.Now())
	if err != nil {
		return "", domainerrors.RenderError(err)
	}

	logger.Info(ctx, "excel export generated", zap.String("path", path))
	return path, nil
}

// ExportCSV writes a single-table CSV export, either customers or loans
func (uc *ExportUseCase) ExportCSV(ctx context.Context, kind string) (string, error) {
	var (
		label   string
		headers []string
		rows    [][]string
		err     error
	)
	switch kind {
	case "customers":
		label, headers = "customers", customerHeaders
		rows, err = uc.customerRows(ctx)
	case "loans":
		label, headers = "loans", loanHeaders
		rows, err = uc.loanRows(ctx)
	default:
		return "", domainerrors.BadRequest("type must be customers or loans")
	}
	if err != nil {
		return "", domainerrors.InternalError(err)
	}

	path, err := uc.renderer.RenderCSV(label, headers, rows, time.Now())
	if err != nil {
		return "", domainerrors.RenderError(err)
	}

	logger.Info(ctx, "csv export generated", zap.String("path", path), zap.String("type", kind))
	return path, nil
}
