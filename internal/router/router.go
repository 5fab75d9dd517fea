package router

import (
	"github.com/gin-gonic/gin"

	"invoiceqc/internal/config"
	"invoiceqc/internal/handler"
	"invoiceqc/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	qcH *handler.QCHandler,
	consoleH *handler.ConsoleHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	// Human-facing console
	r.GET("/console", consoleH.Console)

	v1 := r.Group("/api/v1")
	v1.POST("/validate", qcH.Validate)
	v1.POST("/validate/export", qcH.Export)
	v1.POST("/extract-validate", qcH.ExtractValidate)

	return r
}
