package signer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
)

type service struct {
	keyring keyring.Manager
	metrics *metrics.Service
}

// NewService creates a new signer Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keyringManager keyring.Manager, metricsService *metrics.Service) Service {
	return &service{
		keyring: keyringManager,
		metrics: metricsService,
	}
}

// SignHash signs a 32-byte digest with the key at req.Index
func (s *service) SignHash(_ context.Context, req *SignHashRequest) (resp *SignHashResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpSignHash, time.Since(start), err) }()

	keyCtx, err := s.keyring.Resolve(req.Xpub)
	if err != nil {
		return nil, err
	}

	privateKey, err := keyCtx.SigningKey(req.Index, req.SignerPubkey)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer privateKey.Zero()

	resp = Sign(privateKey, req.Hash[:])

	log.Debug().
		Str("component", "signer").
		Uint32("index", req.Index).
		Msg("Signed hash")

	return resp, nil
}
