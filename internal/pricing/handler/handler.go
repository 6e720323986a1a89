// Package handler exposes the quote calculator over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paintquote_backend/internal/pricing/service"
	"paintquote_backend/internal/pricing/transport"
	"paintquote_backend/platform/httpkit"
)

// Handler handles HTTP requests for pricing estimates.
type Handler struct {
	svc *service.Service
}

// New creates a new pricing handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Estimate prices a structured quote record.
// POST /api/v1/pricing/estimate
func (h *Handler) Estimate(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	data := req.Data
	data.Enrich()
	result := h.svc.Price(&data)
	httpkit.OK(c, result)
}
