package app

import (
	"context"
	"os"
	"os/signal"
	"time"

	"posservice/internal/httpapi"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Application holds all the components and manages the application lifecycle
type Application struct {
	ctx       context.Context
	cancel    context.CancelFunc
	container *Container
	server    *httpapi.Server
}

// NewApplication creates and fully initializes a new Application instance
func NewApplication(ctx context.Context) (*Application, error) {
	// Set up signal handling
	appCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, os.Kill)

	app := &Application{
		ctx:    appCtx,
		cancel: cancel,
	}

	// Initialize container (expensive singletons)
	container, err := NewContainer(app.ctx)
	if err != nil {
		cancel() // Clean up context if initialization fails
		return nil, err
	}
	app.container = container

	factory := NewServiceFactory(container)
	app.server = factory.CreateServer()

	app.container.Logger().Info("Application initialized successfully",
		zap.String("addr", container.Config().HTTPAddr))
	return app, nil
}

// Run serves HTTP until a shutdown signal arrives
func (app *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Run()
	}()

	select {
	case <-app.ctx.Done():
		app.container.Logger().Info("Shutdown signal received")
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down all application components
func (app *Application) Shutdown() {
	if app.container != nil {
		app.container.Logger().Info("Starting application shutdown...")
	}

	// Cancel context
	if app.cancel != nil {
		app.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Drain in-flight requests before tearing down infrastructure
	if app.server != nil {
		if err := app.server.Shutdown(ctx); err != nil && app.container != nil {
			app.container.Logger().Error("HTTP server shutdown failed", zap.Error(err))
		}
	}

	// Shutdown container
	if app.container != nil {
		app.container.Shutdown(ctx)
	}
}
