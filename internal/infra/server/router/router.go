// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finledger/backend/internal/integration/entrypoint/controller"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	uploadController      *controller.UploadController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	uploadDir             string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	uploadController *controller.UploadController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		uploadController:      uploadController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		uploadDir:             uploadDir,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Health)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
		}

		categories := api.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PUT("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := api.Group("/transactions")
		transactions.Use(r.authMiddleware.Authenticate())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			// Fixed paths before the parameterized one so gin never
			// treats "period" as a transaction ID.
			transactions.GET("/period", r.transactionController.ListByPeriod)
			transactions.GET("/type/:type", r.transactionController.ListByType)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		budgets := api.Group("/budgets")
		budgets.Use(r.authMiddleware.Authenticate())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/find", r.budgetController.Find)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/stats", r.dashboardController.GetStats)
			dashboard.GET("/stats/period", r.dashboardController.GetStatsByPeriod)
		}

		upload := api.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("", r.uploadController.Upload)
			upload.DELETE("/:filename", r.uploadController.Delete)
		}
	}

	// Stored attachments are served straight from disk.
	r.engine.Static("/uploads", r.uploadDir)
}
