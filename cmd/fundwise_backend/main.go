package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IamSolomonChika/FundWise-BackEnd/internal/adapters/gateway/flutterwave"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/adapters/mailer"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/gateways"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/core/services"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/handlers"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/middleware"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/platform/config"
	"github.com/IamSolomonChika/FundWise-BackEnd/internal/repositories/database/pgsql"
	"github.com/IamSolomonChika/FundWise-BackEnd/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portssvc "github.com/IamSolomonChika/FundWise-BackEnd/internal/core/ports/services"
)

// @title FundWise Backend API
// @version 1.0
// @description Account ledger backend: deposits, withdrawals and fixed-term investments.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories, outbound adapters and services
	repos := pgsql.NewRepositoryProvider(dbPool)

	var paymentGateway gateways.PaymentGateway = flutterwave.NewClient(cfg.FlwBaseURL, cfg.FlwSecretKey)

	var outboundMailer gateways.Mailer
	if cfg.SMTPHost != "" {
		outboundMailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		outboundMailer = mailer.NewNoopMailer(logger)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, paymentGateway, outboundMailer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Background maturity sweep: pays out matured investments even when no
	// admin triggers the sweep endpoint.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runMaturitySweeper(rootCtx, logger, cfg.SweepInterval, serviceContainer.Maturity)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-rootCtx.Done()
	logger.Info("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped.")
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection via the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// runMaturitySweeper resolves matured investments on a fixed interval until
// the context is cancelled.
func runMaturitySweeper(ctx context.Context, logger *slog.Logger, interval time.Duration, maturitySvc portssvc.MaturitySvcFacade) {
	sweepLogger := logger.With(slog.String("component", "maturity_sweeper"))
	sweepCtx := middleware.ContextWithLogger(ctx, sweepLogger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sweepLogger.Info("Maturity sweeper stopping")
			return
		case <-ticker.C:
			resolved, err := maturitySvc.ResolveMatured(sweepCtx)
			if err != nil {
				sweepLogger.Error("Maturity sweep failed", slog.String("error", err.Error()))
				continue
			}
			if resolved > 0 {
				sweepLogger.Info("Maturity sweep completed", slog.Int("resolved", resolved))
			}
		}
	}
}
