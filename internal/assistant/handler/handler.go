// Package handler exposes the conversational assistant over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"paintquote_backend/internal/assistant/service"
	"paintquote_backend/internal/assistant/transport"
	"paintquote_backend/platform/httpkit"
	"paintquote_backend/platform/validator"
)

// Handler handles HTTP requests for the assistant.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new assistant handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Chat processes one conversation turn.
// POST /api/v1/assistant/chat
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", nil)
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}

// EndSession destroys a conversation session.
// DELETE /api/v1/assistant/sessions/:id
func (h *Handler) EndSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		httpkit.Error(c, http.StatusBadRequest, "missing session ID", nil)
		return
	}

	if err := h.svc.EndSession(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"deleted": id})
}
