package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	domainerrors "kyc-loan.backend/internal/domain/errors"
)

// Sheet is one tab of a tabular export: a name, a header row and data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// RenderExcel writes the given sheets as a timestamped workbook under the
// report directory and returns its path.
func (r *Renderer) RenderExcel(sheets []Sheet, now time.Time) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: no sheets to render", domainerrors.ErrRenderFailed)
	}
	if err := os.MkdirAll(r.reportDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
			}
		}

		header := make([]interface{}, len(sheet.Headers))
		for c, h := range sheet.Headers {
			header[c] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
		}
		end, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err := f.SetCellStyle(sheet.Name, "A1", end, headerStyle); err != nil {
			return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
		}

		for rIdx, row := range sheet.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, rIdx+2)
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
			}
		}
	}

	filename := fmt.Sprintf("full_report_%s.xlsx", now.Format("20060102_150405"))
	path := filepath.Join(r.reportDir, filename)
	if err := f.SaveAs(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}
	return path, nil
}
