package wm

import (
	"context"
	"errors"
)

// ErrNoManager is the panic value of FromContext when no API was provided.
var ErrNoManager = errors.New("wm: window manager used outside of a manager scope")

type apiKey struct{}

// WithAPI returns a context that carries api to nested content.
func WithAPI(ctx context.Context, api API) context.Context {
	return context.WithValue(ctx, apiKey{}, api)
}

// APIFromContext returns the API stored in ctx, if any.
func APIFromContext(ctx context.Context) (API, bool) {
	if ctx == nil {
		return nil, false
	}
	api, ok := ctx.Value(apiKey{}).(API)
	if !ok || api == nil {
		return nil, false
	}
	return api, true
}

// FromContext returns the API stored in ctx. It panics with ErrNoManager
// when ctx carries none, since that is a wiring bug rather than a runtime
// condition.
func FromContext(ctx context.Context) API {
	api, ok := APIFromContext(ctx)
	if !ok {
		panic(ErrNoManager)
	}
	return api
}
