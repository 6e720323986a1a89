// Package parser provides the quote data parsing module.
package parser

import (
	apphttp "paintquote_backend/internal/http"
	"paintquote_backend/internal/parser/handler"
	"paintquote_backend/internal/parser/service"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
	"paintquote_backend/platform/validator"
)

// Module is the parser module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the parser module. A nil model selects
// the deterministic fallback strategy.
func NewModule(model ai.ChatModel, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(model, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "parser"
}

// Service returns the parsing service for use by the assistant module.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts parser routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/parser/parse", m.handler.Parse)
	ctx.Protected.POST("/parser/extract-field", m.handler.ExtractField)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
