package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackhq/expense_tracker_app/cmd/docs"
	portssvc "github.com/fintrackhq/expense_tracker_app/internal/core/ports/services"
	"github.com/fintrackhq/expense_tracker_app/internal/middleware"
	"github.com/fintrackhq/expense_tracker_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid rate limit format, using default",
			slog.String("rate_limit", cfg.RateLimit),
			slog.String("default", config.DefaultRateLimit),
			slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted(config.DefaultRateLimit)
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	// Apply AuthMiddleware and the IP rate limit to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RateLimit(ipLimiter))

	// Delegate route registration to specific handlers, passing required services
	registerTransactionRoutes(v1, services.Transaction, services.Sync)
	registerWalletRoutes(v1, services.Wallet)
	registerAnalyticsRoutes(v1, services.Analytics)
	registerCategoryRoutes(v1)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
