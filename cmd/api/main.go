package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dafibh/budget-tracker/budget-backend/internal/amqp"
	"github.com/dafibh/budget-tracker/budget-backend/internal/config"
	"github.com/dafibh/budget-tracker/budget-backend/internal/handler"
	"github.com/dafibh/budget-tracker/budget-backend/internal/middleware"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository"
	"github.com/dafibh/budget-tracker/budget-backend/internal/repository/storage"
	"github.com/dafibh/budget-tracker/budget-backend/internal/service"
	"github.com/dafibh/budget-tracker/budget-backend/internal/websocket"
)

// @title Budget Tracker API
// @version 1.0
// @description Personal budget tracker: income, expenses, loans, savings and investments with a priority-ordered allocation of the monthly surplus.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx := context.Background()

	// Open the category store
	store, err := repository.NewCategoryStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", string(cfg.StoreBackend)).Msg("Failed to open category store")
	}
	defer store.Close()

	budgetRepo := repository.NewBudgetRepository(store)
	if err := budgetRepo.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise budget categories")
	}

	// Change notifications: websocket clients always, the broker when configured
	hub := websocket.NewHub()
	publishers := websocket.MultiPublisher{hub}

	var broker *amqp.Publisher
	if cfg.AMQP.Enabled() {
		broker, err = amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		publishers = append(publishers, broker)
		log.Info().Str("exchange", cfg.AMQP.Exchange).Msg("Publishing budget events to broker")
	}

	// Initialize services
	budgetService := service.NewBudgetService(budgetRepo)
	incomeService := service.NewIncomeService(budgetRepo)
	expenseService := service.NewExpenseService(budgetRepo)
	loanService := service.NewLoanService(budgetRepo)
	savingsService := service.NewSavingsService(budgetRepo)
	investmentService := service.NewInvestmentService(budgetRepo)

	budgetService.SetEventPublisher(publishers)
	incomeService.SetEventPublisher(publishers)
	expenseService.SetEventPublisher(publishers)
	loanService.SetEventPublisher(publishers)
	savingsService.SetEventPublisher(publishers)
	investmentService.SetEventPublisher(publishers)

	// Keep loan completion and goal contributions current
	refreshWorker := service.NewRefreshWorker(loanService, savingsService, log.Logger, service.RefreshWorkerConfig{
		Interval: cfg.RefreshInterval,
	})
	refreshWorker.SetEventPublisher(publishers)
	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()
	refreshWorker.Start(workerCtx)

	// Backups need a bucket
	var backupJob *service.BackupJob
	var backupHandler *handler.BackupHandler
	if cfg.S3.Enabled() {
		backupStore, err := storage.NewS3Store(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open backup bucket")
		}
		backupJob, err = service.NewBackupJob(budgetRepo, backupStore, cfg.BackupPrefix, cfg.BackupSchedule, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create backup job")
		}
		backupJob.Start()
		backupHandler = handler.NewBackupHandler(backupStore, backupJob, cfg.BackupPrefix)
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Budget:     handler.NewBudgetHandler(budgetService),
		Category:   handler.NewCategoryHandler(budgetService),
		Income:     handler.NewIncomeHandler(incomeService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Loan:       handler.NewLoanHandler(loanService),
		Savings:    handler.NewSavingsHandler(savingsService),
		Investment: handler.NewInvestmentHandler(investmentService),
		Backup:     backupHandler,
		WebSocket:  handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(rateLimiter))

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", string(cfg.StoreBackend)).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	refreshWorker.Stop()
	if backupJob != nil {
		backupJob.Stop()
	}
	rateLimiter.Stop()
	hub.CloseAll()
	if broker != nil {
		if err := broker.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close broker connection")
		}
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
