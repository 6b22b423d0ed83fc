package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/memoboard/internal/config"
	"github.com/ferdiebergado/memoboard/internal/memo"
	"github.com/ferdiebergado/memoboard/internal/middleware"
	"github.com/ferdiebergado/memoboard/internal/platform/router"
	"github.com/ferdiebergado/memoboard/internal/platform/validation"
)

type App struct {
	server          *http.Server
	handler         http.Handler
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	validator       validation.Validator
	router          router.Router
	memoRepo        memo.Repository
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	memoService := memo.NewService(a.memoRepo)
	memoHandler := memo.NewHandler(memoService)
	mountMemoRoutes(a.router, memoHandler, a.validator, a.config.Server.MaxBodyBytes)
	mountHealthRoutes(a.router)
}

// Handler is the fully wired API. CORS sits in front of the router so that
// preflight requests are answered before any route matching.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server

	opts := []memo.Option{memo.WithLocation(provider.Location)}
	if provider.Clock != nil {
		opts = append(opts, memo.WithClock(provider.Clock))
	}

	a := &App{
		config:          cfg,
		validator:       provider.Validator,
		router:          provider.Router,
		memoRepo:        memo.NewMemoryRepository(opts...),
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout,
	}

	a.registerMiddlewares()
	a.setupRoutes()
	a.handler = middleware.CORS(cfg.CORS.AllowedOrigins...)(a.router)

	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: a.handler,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	return a
}
