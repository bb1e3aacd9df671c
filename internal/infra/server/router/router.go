// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/business-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/business-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	companyController     *controller.CompanyController
	transactionController *controller.TransactionController
	settingsController    *controller.SettingsController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies. When
// authMiddleware is nil the router runs in local mode: auth routes are not
// registered and every request is scoped to the nil user.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	companyController *controller.CompanyController,
	transactionController *controller.TransactionController,
	settingsController *controller.SettingsController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		companyController:     companyController,
		transactionController: transactionController,
		settingsController:    settingsController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// identity returns the handler that resolves the request's user: JWT
// authentication in remote mode, the fixed nil user in local mode.
func (r *Router) identity() gin.HandlerFunc {
	if r.authMiddleware != nil {
		return r.authMiddleware.Authenticate()
	}
	return middleware.LocalIdentity()
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (remote mode only)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Company routes
		if r.companyController != nil {
			companies := v1.Group("/companies")
			companies.Use(r.identity())
			{
				companies.GET("", r.companyController.List)
				companies.POST("", r.companyController.Create)
				companies.GET("/:id", r.companyController.Get)
				companies.PUT("/:id", r.companyController.Update)
				companies.DELETE("/:id", r.companyController.Delete)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.identity())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/export", r.transactionController.Export)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Settings routes
		if r.settingsController != nil {
			settings := v1.Group("/settings")
			settings.Use(r.identity())
			{
				settings.GET("", r.settingsController.Get)
				settings.PUT("", r.settingsController.Update)
			}
		}

		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.identity())
			{
				dashboard.GET("", r.dashboardController.Overview)
				dashboard.GET("/payments", r.dashboardController.PaymentSummary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
