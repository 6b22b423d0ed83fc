package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/memoboard/internal/config"
	"github.com/ferdiebergado/memoboard/internal/middleware"
	"github.com/ferdiebergado/memoboard/internal/pkg/logging"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

func Run(baseCtx context.Context) error {
	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	appEnv := os.Getenv("ENV")
	if appEnv != logging.EnvProduction {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
	}

	logging.Setup(appEnv, os.Getenv("LOG_LEVEL"), os.Stdout)
	slog.Info("Initializing...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	api := New(cfg, provider, Middlewares(cfg))
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares is the global chain every route runs behind, outermost first.
// LogRequest wraps the panic recovery so a recovered request is still logged.
func Middlewares(cfg *config.Config) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		middleware.RequestID,
		middleware.LogRequest,
		goexpress.RecoverFromPanic,
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		middleware.ContextGuard,
	}
}

func loadEnvFile(name string) error {
	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No env file found.", "file", name)
		return nil
	}

	if err := env.Load(name); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
