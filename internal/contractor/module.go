// Package contractor provides the contractor context bounded context module.
package contractor

import (
	"paintquote_backend/internal/contractor/handler"
	"paintquote_backend/internal/contractor/service"
	apphttp "paintquote_backend/internal/http"
	"paintquote_backend/platform/logger"
)

// Module is the contractor context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the contractor module.
func NewModule(ds service.DataSource, log *logger.Logger) *Module {
	svc := service.New(ds, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "contractor"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts contractor routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/contractor-context/:companyId", m.handler.Get)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
