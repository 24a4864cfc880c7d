package handlers

import (
	"net/http"

	"github.com/SscSPs/coin_converter/cmd/docs"
	portssvc "github.com/SscSPs/coin_converter/internal/core/ports/services"
	"github.com/SscSPs/coin_converter/internal/middleware"
	"github.com/SscSPs/coin_converter/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// ipLimiter and metricsHandler may be nil, which disables rate limiting and the /metrics route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	ipLimiter *limiter.Limiter,
	metricsHandler http.Handler,
) {
	registerHomeRoutes(r)

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	setupAPIV1Routes(r, services, ipLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, ipLimiter *limiter.Limiter) {
	v1 := r.Group("/api/v1")

	RegisterConverterRoutes(v1, services.Converter, middleware.RateLimit(ipLimiter))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
