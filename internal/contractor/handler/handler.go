// Package handler exposes the contractor context over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paintquote_backend/internal/contractor/service"
	"paintquote_backend/platform/httpkit"
)

// Handler handles HTTP requests for contractor context.
type Handler struct {
	svc *service.Service
}

// New creates a new contractor context handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Get loads the contractor context snapshot for a company.
// GET /api/v1/contractor-context/:companyId
func (h *Handler) Get(c *gin.Context) {
	companyID := c.Param("companyId")
	if companyID == "" {
		httpkit.Error(c, http.StatusBadRequest, "missing company ID", nil)
		return
	}

	cc := h.svc.Load(c.Request.Context(), companyID)
	httpkit.OK(c, cc)
}
