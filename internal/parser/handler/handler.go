// Package handler exposes the parsing pipeline over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paintquote_backend/internal/parser/service"
	"paintquote_backend/internal/parser/transport"
	"paintquote_backend/platform/httpkit"
	"paintquote_backend/platform/validator"
)

// Handler handles HTTP requests for quote parsing.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new parser handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Parse runs the multi-stage pipeline on one raw quote description.
// POST /api/v1/parser/parse
func (h *Handler) Parse(c *gin.Context) {
	var req transport.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	result := h.svc.Parse(c.Request.Context(), req.Text)
	httpkit.OK(c, result)
}

// ExtractField runs a narrow single-question extraction.
// POST /api/v1/parser/extract-field
func (h *Handler) ExtractField(c *gin.Context) {
	var req transport.ExtractFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", nil)
		return
	}

	fields := h.svc.ExtractField(c.Request.Context(), req.Text, req.Instruction)
	httpkit.OK(c, transport.ExtractFieldResult{Fields: fields})
}
