// Package pricing provides the deterministic quote calculator module.
package pricing

import (
	apphttp "paintquote_backend/internal/http"
	"paintquote_backend/internal/pricing/handler"
	"paintquote_backend/internal/pricing/service"
)

// Module is the pricing module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the pricing module.
func NewModule() *Module {
	svc := service.New()
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "pricing"
}

// Service returns the calculator for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts pricing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/pricing/estimate", m.handler.Estimate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
