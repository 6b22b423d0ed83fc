// Package error classifies errors that reach the HTTP boundary.
package error

import (
	"context"
	"errors"
	"log/slog"
)

// IsContextError reports whether err comes from a canceled or expired
// request context. There is nobody left to answer in that case.
func IsContextError(err error) bool {
	switch {
	case errors.Is(err, context.Canceled):
		slog.Warn("request was canceled by the client")
		return true
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("request deadline exceeded")
		return true
	default:
		return false
	}
}
