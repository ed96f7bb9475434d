package oracle

import (
	"context"
	"time"

	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
)

type service struct {
	keyring keyring.Manager
	metrics *metrics.Service
}

// NewService creates a new nonce Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keyringManager keyring.Manager, metricsService *metrics.Service) Service {
	return &service{
		keyring: keyringManager,
		metrics: metricsService,
	}
}

// CreateDeterministicNonce derives the nonce for an event digit. The nonce is
// keyed by the base private key of the context, so it is reproducible by
// whoever holds the seed and by nobody else.
func (s *service) CreateDeterministicNonce(_ context.Context, req *NonceRequest) (nonce *Nonce, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpDeterministicNonce, time.Since(start), err) }()

	if err := ValidateEventID(req.EventID); err != nil {
		return nil, err
	}

	keyCtx, err := s.keyring.Resolve(req.Xpub)
	if err != nil {
		return nil, err
	}

	baseKey := keyCtx.BaseKey()
	defer baseKey.Zero()

	return DeriveNonce(baseKey, req.EventID, req.Index)
}
