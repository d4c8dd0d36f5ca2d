package router

import (
	"github.com/gin-gonic/gin"

	"freightaudit/internal/config"
	"freightaudit/internal/handler"
	"freightaudit/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	auditH *handler.AuditHandler,
	contractH *handler.ContractHandler,
	headerH *handler.HeaderHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Protected routes - require valid JWT
	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(&cfg.JWT))

	// Audit routes
	audits := v1.Group("/audits")
	audits.POST("", auditH.Run)
	audits.POST("/csv", auditH.RunFile)
	audits.POST("/export", auditH.Export)

	// Header mapping
	v1.POST("/headers/map", headerH.Map)

	// Contract routes
	contracts := v1.Group("/contracts")
	contracts.POST("", contractH.Upload)
	contracts.GET("", contractH.List)
	contracts.GET("/:name", contractH.Get)
	contracts.DELETE("/:name", contractH.Delete)

	return r
}
