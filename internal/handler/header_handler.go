package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freightaudit/internal/port"
)

// HeaderHandler handles CSV header mapping endpoints.
type HeaderHandler struct {
	mapper port.HeaderMapper
}

// NewHeaderHandler creates a new HeaderHandler.
func NewHeaderHandler(mapper port.HeaderMapper) *HeaderHandler {
	return &HeaderHandler{mapper: mapper}
}

// HeaderMapRequest is the JSON body for header mapping requests.
type HeaderMapRequest struct {
	Headers []string `json:"headers"`
}

// Map handles POST /api/v1/headers/map
// Maps arbitrary raw invoice column headers to the standard shipment schema;
// a null value in the result means the header matched nothing.
func (h *HeaderHandler) Map(c *gin.Context) {
	var req HeaderMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}
	if len(req.Headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_HEADERS", "headers field is required")
		return
	}

	mapping, err := h.mapper.MapHeaders(c.Request.Context(), req.Headers)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"mapping": mapping})
}
