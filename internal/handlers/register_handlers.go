package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/shop_management_app/cmd/docs"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/SscSPs/shop_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metricsHandler is served on /metrics when non-nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metricsHandler http.Handler,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	loginLimiter, err := middleware.NewMemoryRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	apiLimiter, err := middleware.NewMemoryRateLimiter(cfg.APIRateLimit)
	if err != nil {
		return fmt.Errorf("api rate limit: %w", err)
	}

	// Public authentication routes
	RegisterAuthRoutes(r.Group("/api/v1"), services.User, services.Token, middleware.RateLimit(loginLimiter))

	setupAPIV1Routes(r, cfg, services, middleware.RateLimit(apiLimiter))
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to
// the per-entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), rateLimit)

	RegisterUserRoutes(v1, service.User)
	RegisterCustomerRoutes(v1, service.Customer, service.Ledger)
	RegisterOrderRoutes(v1, service.Order)
	RegisterPaymentRoutes(v1, service.Payment)
	RegisterReturnedOrderRoutes(v1, service.ReturnedOrder)
	RegisterInventoryRoutes(v1, service.Inventory)
	RegisterLedgerRoutes(v1, service.Ledger)
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
