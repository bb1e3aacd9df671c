// Package main is the entry point for the Business Ledger API server.
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

	"github.com/business-ledger/backend/config"
	"github.com/business-ledger/backend/internal/application/adapter"
	"github.com/business-ledger/backend/internal/application/usecase/auth"
	"github.com/business-ledger/backend/internal/application/usecase/company"
	"github.com/business-ledger/backend/internal/application/usecase/dashboard"
	"github.com/business-ledger/backend/internal/application/usecase/settings"
	"github.com/business-ledger/backend/internal/application/usecase/transaction"
	"github.com/business-ledger/backend/internal/infra/db"
	"github.com/business-ledger/backend/internal/infra/localstore"
	"github.com/business-ledger/backend/internal/infra/server/router"
	"github.com/business-ledger/backend/internal/integration/adapters"
	"github.com/business-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/business-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/business-ledger/backend/internal/integration/persistence"
	"github.com/business-ledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Business Ledger API",
		"environment", cfg.Server.Environment,
		"storage_driver", cfg.Storage.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	var (
		companyRepo     adapter.CompanyRepository
		transactionRepo adapter.TransactionRepository
		settingsRepo    adapter.SettingsRepository

		storageHealthChecker func() bool
		authController       *controller.AuthController
		loginRateLimiter     *middleware.RateLimiter
		authMiddleware       *middleware.AuthMiddleware
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverLocal:
		store, err := localstore.New(cfg.Storage.LocalPath)
		if err != nil {
			slog.Error("Failed to open local store", "path", cfg.Storage.LocalPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Local store opened", "path", cfg.Storage.LocalPath)

		companyRepo = store.Companies()
		transactionRepo = store.Transactions()
		settingsRepo = store.Settings()
		storageHealthChecker = func() bool { return true }

	case config.StorageDriverPostgres:
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.UserSettingsModel{},
			&model.CompanyModel{},
			&model.TransactionModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		companyRepo = persistence.NewCompanyRepository(database.DB())
		transactionRepo = persistence.NewTransactionRepository(database.DB())
		settingsRepo = persistence.NewSettingsRepository(database.DB())
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		storageHealthChecker = database.HealthCheck

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenExpiry,
			cfg.JWT.RefreshTokenExpiry,
			tokenRepo,
		)

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		)

		loginRateLimiter = middleware.NewRateLimiter(newRedisClient(&cfg.Redis))
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

	default:
		slog.Error("Unknown storage driver", "driver", cfg.Storage.Driver)
		os.Exit(1)
	}

	// Company use cases
	createCompanyUseCase := company.NewCreateCompanyUseCase(companyRepo)
	updateCompanyUseCase := company.NewUpdateCompanyUseCase(companyRepo)
	deleteCompanyUseCase := company.NewDeleteCompanyUseCase(companyRepo)
	listCompaniesUseCase := company.NewListCompaniesUseCase(companyRepo)
	getCompanyUseCase := company.NewGetCompanyUseCase(companyRepo, transactionRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, companyRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, companyRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo, companyRepo)

	// Settings and dashboard use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)
	overviewUseCase := dashboard.NewGetOverviewUseCase(companyRepo)
	paymentSummaryUseCase := dashboard.NewPaymentSummaryUseCase(companyRepo, transactionRepo)

	// Controllers
	healthController := controller.NewHealthController(storageHealthChecker)
	companyController := controller.NewCompanyController(
		createCompanyUseCase,
		updateCompanyUseCase,
		deleteCompanyUseCase,
		listCompaniesUseCase,
		getCompanyUseCase,
	)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase, paymentSummaryUseCase)

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		companyController,
		transactionController,
		settingsController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
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

// newRedisClient builds the Redis client for the login rate limiter. A
// connection failure is not fatal: the limiter falls back to its in-memory
// window, so a nil client is returned on bad configuration.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, rate limiting falls back to memory", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	return redis.NewClient(opts)
}
