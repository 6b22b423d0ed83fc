package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ferdiebergado/memoboard/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		slog.Error("Server stopped with an error.", "reason", err)
		os.Exit(1)
	}
	slog.Info("Server shutdown gracefully.")
}
