// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/blessing-poultries/backend/config"
	"github.com/blessing-poultries/backend/internal/application/usecase/auth"
	"github.com/blessing-poultries/backend/internal/application/usecase/budget"
	"github.com/blessing-poultries/backend/internal/application/usecase/contact"
	"github.com/blessing-poultries/backend/internal/application/usecase/expense"
	"github.com/blessing-poultries/backend/internal/application/usecase/finance"
	"github.com/blessing-poultries/backend/internal/application/usecase/income"
	"github.com/blessing-poultries/backend/internal/application/usecase/report"
	"github.com/blessing-poultries/backend/internal/infra/server/router"
	"github.com/blessing-poultries/backend/internal/integration/adapters"
	"github.com/blessing-poultries/backend/internal/integration/cache"
	"github.com/blessing-poultries/backend/internal/integration/email"
	"github.com/blessing-poultries/backend/internal/integration/email/templates"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/controller"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/middleware"
	"github.com/blessing-poultries/backend/internal/integration/export"
	"github.com/blessing-poultries/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	SeedAdmin   *auth.SeedAdminUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	contactRepo := persistence.NewContactRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	adviceService := adapters.NewGeminiAdviceService(cfg.Advisor.GeminiAPIKey)
	summaryCache := cache.NewRedisSummaryCache(redisClient)
	emailService := email.NewService(emailQueueRepo, cfg.Email.InboxEmail, cfg.Email.InboxName)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	seedAdminUseCase := auth.NewSeedAdminUseCase(userRepo, passwordService)

	// Create record use cases
	createExpensesUseCase := expense.NewCreateExpensesUseCase(expenseRepo, summaryCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, summaryCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache)

	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, summaryCache)
	listIncomeUseCase := income.NewListIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, summaryCache)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, summaryCache)

	// Create aggregation and budget use cases
	summaryUseCase := finance.NewGetFinancialSummaryUseCase(expenseRepo, incomeRepo, summaryCache, cfg.Cache.SummaryTTL)
	budgetStatusUseCase := budget.NewGetBudgetStatusUseCase(budgetRepo, expenseRepo, incomeRepo)
	currentBudgetUseCase := budget.NewGetCurrentBudgetUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create report use cases
	buildReportUseCase := report.NewBuildReportUseCase(summaryUseCase, budgetStatusUseCase)
	getAdviceUseCase := report.NewGetAdviceUseCase(buildReportUseCase, adviceService)

	// Create contact use cases
	submitMessageUseCase := contact.NewSubmitMessageUseCase(contactRepo, emailService)
	listMessagesUseCase := contact.NewListMessagesUseCase(contactRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpensesUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	incomeController := controller.NewIncomeController(
		createIncomeUseCase,
		listIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	financeController := controller.NewFinanceController(summaryUseCase)

	budgetController := controller.NewBudgetController(
		budgetStatusUseCase,
		currentBudgetUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	reportController := controller.NewReportController(
		buildReportUseCase,
		getAdviceUseCase,
		export.NewExcelExporter(),
		export.NewPDFExporter(),
	)

	contactController := controller.NewContactController(
		submitMessageUseCase,
		listMessagesUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		incomeController,
		financeController,
		budgetController,
		reportController,
		contactController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create email worker
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
		SeedAdmin:   seedAdminUseCase,
	}, nil
}
