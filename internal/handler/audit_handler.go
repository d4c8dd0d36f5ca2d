package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"freightaudit/internal/csvexport"
	"freightaudit/internal/domain"
	"freightaudit/internal/ingest"
	"freightaudit/internal/service"
)

// AuditHandler handles invoice audit endpoints.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// AuditRequest is the JSON body for direct audit requests. Contracts is an
// optional map of provider name to rate card; providers without an inline
// contract fall back to the contract store.
type AuditRequest struct {
	Rows      []domain.ShipmentRow            `json:"rows"`
	Contracts map[string]domain.ContractRules `json:"contracts,omitempty"`
}

// Run handles POST /api/v1/audits
func (h *AuditHandler) Run(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	out, err := h.auditService.Run(c.Request.Context(), service.AuditInput{
		Rows:      req.Rows,
		Contracts: req.Contracts,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// RunFile handles POST /api/v1/audits/csv
// Accepts a multipart CSV or XLSX invoice export, an optional "mapping" form
// field (JSON object of raw header to standard field, null to drop a column),
// and an optional "contracts" form field (JSON, same shape as AuditRequest).
func (h *AuditHandler) RunFile(c *gin.Context) {
	rows, ok := h.readUploadedRows(c)
	if !ok {
		return
	}

	var contracts map[string]domain.ContractRules
	if raw := c.PostForm("contracts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &contracts); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_CONTRACTS", "contracts field must be a valid JSON object")
			return
		}
	}

	out, err := h.auditService.Run(c.Request.Context(), service.AuditInput{
		Rows:      rows,
		Contracts: contracts,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, out)
}

// Export handles POST /api/v1/audits/export
// Runs the same audit as POST /audits and streams the flagged rows as a CSV
// download instead of returning JSON.
func (h *AuditHandler) Export(c *gin.Context) {
	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	out, err := h.auditService.Run(c.Request.Context(), service.AuditInput{
		Rows:      req.Rows,
		Contracts: req.Contracts,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("audit_discrepancies")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	for _, p := range out.Providers {
		if err := w.WriteDiscrepancies(p.Provider, p.Result.Discrepancies); err != nil {
			return
		}
	}
	w.Flush()
}

// readUploadedRows pulls the multipart "file" field and decodes it as CSV or
// XLSX, applying the optional header mapping. Returns false if an error
// response has been written.
func (h *AuditHandler) readUploadedRows(c *gin.Context) ([]domain.ShipmentRow, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	var mapping map[string]*string
	if raw := c.PostForm("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_MAPPING", "mapping field must be a valid JSON object")
			return nil, false
		}
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	var rows []domain.ShipmentRow
	switch ext {
	case ".csv":
		rows, err = ingest.ReadCSV(file, mapping)
	case ".xlsx":
		rows, err = ingest.ReadXLSX(file, mapping)
	default:
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported invoice file type; allowed: csv, xlsx")
		return nil, false
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not parse invoice file: "+err.Error())
		return nil, false
	}

	return rows, true
}
