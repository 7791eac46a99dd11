package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"kyc-loan.backend/internal/domain/entities"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

// Renderer builds PDF, Excel and CSV artifacts from already-fetched rows.
// It never touches the database; a failed render leaves no partial file
// behind that callers would reference.
type Renderer struct {
	letterDir string
	reportDir string
}

// NewRenderer creates a renderer writing letters and reports under the given directories
func NewRenderer(letterDir, reportDir string) *Renderer {
	return &Renderer{letterDir: letterDir, reportDir: reportDir}
}

// RenderLoanDecision generates the decision letter for a loan verdict and
// returns the path of the written PDF.
func (r *Renderer) RenderLoanDecision(d *entities.LoanDecision) (string, error) {
	if err := os.MkdirAll(r.letterDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	filename := fmt.Sprintf("loan_%s_%s.pdf", d.LoanID, d.Status)
	path := filepath.Join(r.letterDir, filename)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "KYC & Loan Management System")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Date: "+d.DecidedAt.Format("2006-01-02"))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 16)
	if d.Status == entities.LoanApproved {
		pdf.Cell(0, 10, "LOAN APPROVAL LETTER")
	} else {
		pdf.Cell(0, 10, "LOAN REJECTION LETTER")
	}
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Dear %s,", d.ApplicantName))
	pdf.Ln(10)
	if d.Status == entities.LoanApproved {
		pdf.MultiCell(0, 6, fmt.Sprintf(
			"We are pleased to inform you that your loan application (ID: %s) for the amount of $%.2f has been APPROVED.",
			d.LoanID, d.Amount), "", "L", false)
		pdf.Ln(4)
		pdf.MultiCell(0, 6, "Please verify your bank details in your dashboard to receive funds.", "", "L", false)
	} else {
		pdf.MultiCell(0, 6, fmt.Sprintf(
			"We regret to inform you that your loan application (ID: %s) for the amount of $%.2f has been REJECTED due to policy criteria.",
			d.LoanID, d.Amount), "", "L", false)
	}
	pdf.Ln(8)

	details := [][2]string{
		{"Amount", fmt.Sprintf("$%.2f", d.Amount)},
		{"Term", fmt.Sprintf("%d months", d.TenureMonths)},
		{"Purpose", d.Purpose},
		{"Date of Application", d.AppliedAt.Format("2006-01-02")},
		{"Decision Date", d.DecidedAt.Format("2006-01-02")},
	}
	notes := d.Notes
	if notes == "" {
		notes = "No additional notes"
	}
	details = append(details, [2]string{"Admin Notes", notes})

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(120, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Sincerely,")
	pdf.Ln(8)
	pdf.Cell(0, 8, "The Loan Management Team")

	if err := pdf.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}
	return path, nil
}
