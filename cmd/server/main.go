package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coverbank/underwriting-service/internal/application/usecase"
	"github.com/coverbank/underwriting-service/internal/domain/service"
	"github.com/coverbank/underwriting-service/internal/infrastructure/adapter"
	"github.com/coverbank/underwriting-service/internal/infrastructure/config"
	"github.com/coverbank/underwriting-service/internal/infrastructure/messaging"
	pgRepo "github.com/coverbank/underwriting-service/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/coverbank/underwriting-service/internal/presentation/grpc"
	"github.com/coverbank/underwriting-service/internal/presentation/rest"
	"github.com/coverbank/underwriting-service/pkg/auth"
	"github.com/coverbank/underwriting-service/pkg/kafka"
	"github.com/coverbank/underwriting-service/pkg/observability"
	"github.com/coverbank/underwriting-service/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting underwriting service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := postgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Observability ------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(ctx) //nolint:errcheck

	metrics := observability.NewUnderwritingMetrics()

	// --- Infrastructure adapters -------------------------------------------
	appRepo := pgRepo.NewApplicationRepo(pool)
	resultRepo := pgRepo.NewRuleResultRepo(pool)

	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close() //nolint:errcheck
	publisher := messaging.NewKafkaEventPublisher(producer, logger)

	riskClient := adapter.NewStubRiskProfileClient()
	underwriter := service.NewUnderwritingEngine()

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// --- Use cases ----------------------------------------------------------
	evaluateUC := usecase.NewEvaluateApplicationUseCase(appRepo, resultRepo, publisher, riskClient, underwriter)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	listResultsUC := usecase.NewListRuleResultsUseCase(resultRepo)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewUnderwritingHandler(evaluateUC, getAppUC, listResultsUC, metrics)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService, grpcPresentation.ServerOptions{
		TLSCertFile: cfg.TLS.CertFile,
		TLSKeyFile:  cfg.TLS.KeyFile,
		Reflection:  cfg.Reflection,
	})

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("underwriting service stopped")
}
