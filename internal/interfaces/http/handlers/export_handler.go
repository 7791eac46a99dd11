package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "kyc-loan.backend/internal/domain/errors"
	"kyc-loan.backend/internal/interfaces/http/response"
	"kyc-loan.backend/internal/usecases"
)

// ExportHandler generates downloadable reports and serves stored artifacts
type ExportHandler struct {
	exportUsecase *usecases.ExportUseCase
	letterDir     string
	reportDir     string
}

func NewExportHandler(exportUsecase *usecases.ExportUseCase, letterDir, reportDir string) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
		letterDir:     letterDir,
		reportDir:     reportDir,
	}
}

// Excel generates the verifications and loans workbook
// GET /api/export/excel
func (h *ExportHandler) Excel(c *gin.Context) {
	path, err := h.exportUsecase.ExportExcel(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "export generated", gin.H{
		"file":         filepath.Base(path),
		"download_url": "/api/downloads/reports/" + filepath.Base(path),
	})
}

// CSV generates a single-table export, type=customers|loans
// GET /api/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	kind := c.DefaultQuery("type", "customers")

	path, err := h.exportUsecase.ExportCSV(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "export generated", gin.H{
		"file":         filepath.Base(path),
		"download_url": "/api/downloads/reports/" + filepath.Base(path),
	})
}

// DownloadReport serves a generated report by name
// GET /api/downloads/reports/:name
func (h *ExportHandler) DownloadReport(c *gin.Context) {
	h.serveArtifact(c, h.reportDir)
}

// DownloadLetter serves a generated decision letter by name
// GET /api/downloads/letters/:name
func (h *ExportHandler) DownloadLetter(c *gin.Context) {
	h.serveArtifact(c, h.letterDir)
}

func (h *ExportHandler) serveArtifact(c *gin.Context, dir string) {
	name := c.Param("name")
	// names never contain path separators, reject traversal attempts
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		response.Error(c, domainerrors.BadRequest("invalid file name"))
		return
	}

	c.FileAttachment(filepath.Join(dir, name), name)
}
