// Package gps provides the GPS processing bounded context module.
package gps

import (
	"hangout_backend/internal/archive"
	"hangout_backend/internal/gps/handler"
	"hangout_backend/internal/gps/repository"
	"hangout_backend/internal/gps/service"
	apphttp "hangout_backend/internal/http"
	"hangout_backend/internal/places"
	"hangout_backend/platform/cache"
	"hangout_backend/platform/config"
	"hangout_backend/platform/logger"
	"hangout_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the GPS processing bounded context implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the GPS processing pipeline: places aggregation, Postgres
// persistence, Redis cache, and the archive task producer.
func NewModule(pool *pgxpool.Pool, recommender *places.Service, c *cache.Cache, archiver archive.Archiver, archiveFile *archive.Store, geo config.GeoConfig, log *logger.Logger, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(recommender, repo, c, archiver, archiveFile, geo, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "gps"
}

// RegisterRoutes mounts the GPS processing routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/process-gps", m.handler.ProcessGPS)
	ctx.API.POST("/test-connection", m.handler.TestConnection)
	ctx.API.GET("/health", m.handler.Health)

	// stored data requires an authenticated user
	ctx.API.GET("/data", ctx.AuthMiddleware, m.handler.GetData)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
