package test

import (
	"context"
	"testing"

	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/api/router"
	"github/dlcplaza/go-dlcsigner/internal/config"
)

// WithTestServer returns a fully configured server with a fresh, empty key ring.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	defaultConfig := config.DefaultServiceConfigFromEnv()
	WithTestServerConfigurable(t, defaultConfig, closure)
}

// WithTestServerConfigurable returns a server built from config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	ctx := context.Background()
	WithTestServerConfigurableContext(ctx, t, config, closure)
}

// WithTestServerConfigurableContext returns a server built from config, shut down with ctx.
func WithTestServerConfigurableContext(ctx context.Context, t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config)

	closure(s)

	// echo is shutdown even though it was never started, this wipes the key ring
	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Fatalf("Failed to shutdown server: %v", errs)
	}
}

// NewTestServer builds a server and attaches all routes.
func NewTestServer(t *testing.T, config config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(config)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	return s
}
