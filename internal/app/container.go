package app

import (
	"context"
	"fmt"
	"os"

	"posservice/internal/config"
	"posservice/internal/platform/observability"
	ppostgres "posservice/internal/platform/postgres"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

// Container holds expensive-to-create singleton resources and dependencies
type Container struct {
	config            *config.Config
	logger            observability.Logger
	tracer            observability.Tracer
	db                *gorm.DB
	otelLogShutdown   func(context.Context) error
	otelTraceShutdown func(context.Context) error
}

// NewContainer creates and initializes all infrastructure components
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Money fields serialize as JSON numbers, matching what the
	// storefront parses.
	decimal.MarshalJSONWithoutQuotes = true

	container := &Container{
		config: cfg,
	}

	if err := container.setupLogger(); err != nil {
		return nil, err
	}

	if err := container.setupObservability(ctx); err != nil {
		return nil, err
	}

	if err := container.setupDatabase(); err != nil {
		return nil, err
	}

	return container, nil
}

// setupLogger initializes the basic logger before OTel is available
func (c *Container) setupLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	c.logger = logger
	return nil
}

// setupObservability configures OpenTelemetry logging and tracing. Without
// an OTLP endpoint the service runs with console logging and no-op traces.
func (c *Container) setupObservability(ctx context.Context) error {
	if !c.config.ObservabilityEnabled() {
		c.tracer = noop.NewTracerProvider().Tracer(config.ServiceName)
		c.logger.Info("OTLP endpoint not configured, tracing disabled")
		return nil
	}

	otelLogShutdown, err := observability.SetupLoggingSDK(ctx, c.config)
	if err != nil {
		c.logger.Error("Failed to setup OpenTelemetry logging", zap.Error(err))
	}
	c.otelLogShutdown = otelLogShutdown

	_, otelTraceShutdown, err := observability.SetupTracingSDK(ctx, c.config)
	if err != nil {
		c.logger.Error("Failed to setup OpenTelemetry tracing", zap.Error(err))
	}
	c.otelTraceShutdown = otelTraceShutdown

	c.reinitializeLoggerWithOTel()
	c.tracer = otel.Tracer(config.ServiceName)

	return nil
}

// reinitializeLoggerWithOTel creates a new logger with OpenTelemetry integration
func (c *Container) reinitializeLoggerWithOTel() {
	logProvider := global.GetLoggerProvider()
	instrumentationScopeName := config.ServiceName + ".manual"
	otelZapCore := otelzap.NewCore(instrumentationScopeName,
		otelzap.WithLoggerProvider(logProvider),
	)

	consoleEncoderConfig := zap.NewProductionEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(consoleEncoderConfig),
		zapcore.Lock(os.Stdout),
		zap.InfoLevel,
	)

	finalCore := zapcore.NewTee(otelZapCore, consoleCore)
	logger := zap.New(finalCore,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service.name", config.ServiceName)),
	)

	c.logger = logger
	c.logger.Info("Logger re-initialized with OpenTelemetry bridge")
}

// setupDatabase opens the connection pool and runs migrations
func (c *Container) setupDatabase() error {
	db, err := ppostgres.Open(c.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db
	c.logger.Info("Database connection established")
	return nil
}

// Shutdown gracefully shuts down all infrastructure components
func (c *Container) Shutdown(ctx context.Context) {
	c.logger.Info("Shutting down infrastructure...")

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				c.logger.Error("Failed to close database", zap.Error(err))
			}
		}
	}

	if c.otelTraceShutdown != nil {
		if err := c.otelTraceShutdown(ctx); err != nil {
			c.logger.Error("Failed to shutdown OTel tracing", zap.Error(err))
		}
	}

	if c.otelLogShutdown != nil {
		if err := c.otelLogShutdown(ctx); err != nil {
			c.logger.Error("Failed to shutdown OTel logging", zap.Error(err))
		}
	}

	if err := c.logger.Sync(); err != nil {
		// Can't log this error since logger might be closed
		fmt.Printf("Failed to sync logger: %v\n", err)
	}
}

// Getters for accessing infrastructure components
func (c *Container) Config() *config.Config       { return c.config }
func (c *Container) Logger() observability.Logger { return c.logger }
func (c *Container) Tracer() observability.Tracer { return c.tracer }
func (c *Container) DB() *gorm.DB                 { return c.db }
