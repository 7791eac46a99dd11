package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainerrors "kyc-loan.backend/internal/domain/errors"
)

// RenderCSV writes a single table as a timestamped CSV file under the report
// directory and returns its path. The label is lowercased into the filename.
func (r *Renderer) RenderCSV(label string, headers []string, rows [][]string, now time.Time) (string, error) {
	if err := os.MkdirAll(r.reportDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	filename := fmt.Sprintf("%s_export_%s.csv", strings.ToLower(label), now.Format("20060102_150405"))
	path := filepath.Join(r.reportDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domainerrors.ErrRenderFailed, err)
	}
	return path, nil
}
