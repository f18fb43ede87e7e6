// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/blessing-poultries/backend/internal/integration/entrypoint/controller"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	expenseController *controller.ExpenseController
	incomeController  *controller.IncomeController
	financeController *controller.FinanceController
	budgetController  *controller.BudgetController
	reportController  *controller.ReportController
	contactController *controller.ContactController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	financeController *controller.FinanceController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	contactController *controller.ContactController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		expenseController: expenseController,
		incomeController:  incomeController,
		financeController: financeController,
		budgetController:  budgetController,
		reportController:  reportController,
		contactController: contactController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
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

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// The contact form is the only public (non-health) endpoint.
		if r.contactController != nil {
			v1.POST("/contact", r.contactController.Submit)
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			income := v1.Group("/income")
			income.Use(r.authMiddleware.Authenticate())
			{
				income.GET("", r.incomeController.List)
				income.POST("", r.incomeController.Create)
				income.PATCH("/:id", r.incomeController.Update)
				income.DELETE("/:id", r.incomeController.Delete)
			}
		}

		// Financial summary routes (require authentication)
		if r.financeController != nil && r.authMiddleware != nil {
			finance := v1.Group("/finance")
			finance.Use(r.authMiddleware.Authenticate())
			{
				finance.GET("/summary", r.financeController.GetSummary)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("/status", r.budgetController.GetStatus)
				budgets.GET("/current", r.budgetController.GetCurrent)
				budgets.POST("", r.budgetController.Create)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/excel", r.reportController.ExportExcel)
				reports.GET("/pdf", r.reportController.ExportPDF)
				reports.GET("/advice", r.reportController.GetAdvice)
			}
		}

		// Contact inbox routes (require authentication)
		if r.contactController != nil && r.authMiddleware != nil {
			messages := v1.Group("/contact/messages")
			messages.Use(r.authMiddleware.Authenticate())
			{
				messages.GET("", r.contactController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
