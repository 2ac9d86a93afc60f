// Package main is the entry point for the ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/finledger/backend/config"
	"github.com/finledger/backend/internal/application/usecase/auth"
	"github.com/finledger/backend/internal/application/usecase/budget"
	"github.com/finledger/backend/internal/application/usecase/category"
	"github.com/finledger/backend/internal/application/usecase/stats"
	"github.com/finledger/backend/internal/application/usecase/transaction"
	"github.com/finledger/backend/internal/infra/db"
	"github.com/finledger/backend/internal/infra/server/router"
	"github.com/finledger/backend/internal/integration/adapters"
	"github.com/finledger/backend/internal/integration/entrypoint/controller"
	"github.com/finledger/backend/internal/integration/entrypoint/middleware"
	"github.com/finledger/backend/internal/integration/persistence"
	"github.com/finledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	unitOfWork := persistence.NewUnitOfWork(database.DB())

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	fileStorage, err := adapters.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		slog.Error("Failed to initialize file storage", "error", err)
		os.Exit(1)
	}

	// Use cases
	seedDefaultsUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, seedDefaultsUseCase, unitOfWork)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	currentUserUseCase := auth.NewCurrentUserUseCase(userRepo)

	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	findBudgetUseCase := budget.NewFindBudgetUseCase(budgetRepo)

	getStatsUseCase := stats.NewGetStatsUseCase(transactionRepo)
	getStatsByPeriodUseCase := stats.NewGetStatsByPeriodUseCase(transactionRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(createBudgetUseCase, listBudgetsUseCase, findBudgetUseCase)
	dashboardController := controller.NewDashboardController(getStatsUseCase, getStatsByPeriodUseCase)
	uploadController := controller.NewUploadController(fileStorage)

	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment != "test" {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, currentUserUseCase)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		uploadController,
		loginRateLimiter,
		authMiddleware,
		cfg.Upload.Dir,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
