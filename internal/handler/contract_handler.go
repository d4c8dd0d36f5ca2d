package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightaudit/internal/service"
)

// ContractHandler handles provider rate-card endpoints.
type ContractHandler struct {
	contractService service.ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractService service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Upload handles POST /api/v1/contracts
// Accepts a multipart rate-card document (PDF, JPG, PNG), extracts the rate
// card, and persists it keyed by the provider name found in the document.
func (h *ContractHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	contract, err := h.contractService.Upload(c.Request.Context(), service.ContractUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, contract)
}

// List handles GET /api/v1/contracts
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.contractService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, contracts)
}

// Get handles GET /api/v1/contracts/:name
func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.contractService.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, contract)
}

// Delete handles DELETE /api/v1/contracts/:name
func (h *ContractHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.contractService.Delete(c.Request.Context(), name); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": name})
}
