// Package assistant provides the conversational assistant module.
package assistant

import (
	"paintquote_backend/internal/assistant/handler"
	"paintquote_backend/internal/assistant/service"
	apphttp "paintquote_backend/internal/http"
	parserservice "paintquote_backend/internal/parser/service"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
	"paintquote_backend/platform/validator"
)

// Module is the assistant module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the assistant module.
func NewModule(
	model ai.ChatModel,
	parser *parserservice.Service,
	loader service.ContextLoader,
	catalog service.CatalogWriter,
	sessions service.SessionStore,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	svc := service.New(model, parser, loader, catalog, sessions, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "assistant"
}

// Service returns the orchestrator service.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts assistant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/assistant/chat", m.handler.Chat)
	ctx.Protected.DELETE("/assistant/sessions/:id", m.handler.EndSession)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
