package webui

import (
	"net/http"
	"time"

	apphttp "hangout_backend/internal/http"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"
)

// Module wires the web form frontend.
type Module struct {
	handler *Handler
}

// NewModule builds the frontend against the configured processing endpoint.
func NewModule(cfg config.WebUIConfig, log *logger.Logger) *Module {
	controller := NewController(
		&http.Client{Timeout: 15 * time.Second},
		cfg.GetProcessEndpointURL(),
		log,
	)
	return &Module{handler: NewHandler(controller)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "webui"
}

// RegisterRoutes mounts the page routes on the engine root.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.SetHTMLTemplate(PageTemplate())
	ctx.Engine.GET("/", m.handler.Index)
	ctx.Engine.POST("/submit", m.handler.Submit)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
