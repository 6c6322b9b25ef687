package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shiftbooks/backoffice/cmd/docs"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/middleware"
	"github.com/shiftbooks/backoffice/internal/platform/config"
	"github.com/shiftbooks/backoffice/internal/platform/metrics"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	registerAuthRoutes(r, services)
	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity registrations.
func setupAPIV1Routes(r *gin.Engine, services *ports.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token, services.User))

	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, services.Transaction)
	registerAvailabilityRoutes(v1, services.Availability)
	registerRotaRoutes(v1, services.Rota)
	registerTimeClockRoutes(v1, services.TimeClock)
	registerReportRoutes(v1, services.TimeClock)
	registerActivityRoutes(v1, services.Activity)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
