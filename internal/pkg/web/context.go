package web

import (
	"context"
	"fmt"
)

type payloadCtxKey struct{}

// WithPayload stores a decoded request body for the handlers down the chain.
func WithPayload(ctx context.Context, payload any) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// PayloadFromContext returns the body stored by WithPayload. It fails when
// none was stored or when it is not a T.
func PayloadFromContext[T any](ctx context.Context) (T, error) {
	payload, ok := ctx.Value(payloadCtxKey{}).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("request payload is not a %T", zero)
	}
	return payload, nil
}
