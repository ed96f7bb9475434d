package wallet

import (
	"context"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/seed"
)

type service struct {
	keyring        keyring.Manager
	metrics        *metrics.Service
	basePath       string
	defaultNetwork string
}

// NewService creates a new wallet Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(keyringManager keyring.Manager, metricsService *metrics.Service, basePath string, defaultNetwork string) Service {
	return &service{
		keyring:        keyringManager,
		metrics:        metricsService,
		basePath:       basePath,
		defaultNetwork: defaultNetwork,
	}
}

func (s *service) network(tag string) string {
	if tag == "" {
		return s.defaultNetwork
	}
	return tag
}

// InitWithEntropy builds a key context from raw entropy and activates it.
// Requests already holding the previous context finish with it.
func (s *service) InitWithEntropy(ctx context.Context, req *InitWithEntropyRequest) (xpub string, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpInitWithEntropy, time.Since(start), err) }()

	params, err := hdkey.ParseNetwork(s.network(req.Network))
	if err != nil {
		return "", err
	}

	seedBytes, err := seed.FromEntropyHex(req.Entropy)
	if err != nil {
		return "", err
	}
	defer seed.Wipe(seedBytes)

	keyCtx, err := hdkey.NewContext(seedBytes, params, s.basePath)
	if err != nil {
		return "", err
	}

	s.keyring.Activate(keyCtx)
	s.metrics.SetKeyContexts(s.keyring.Len())

	util.LogFromContext(ctx).Info().
		Str("xpub", keyCtx.Xpub()).
		Str("network", params.Name).
		Msg("Initialized master key from entropy")

	return keyCtx.Xpub(), nil
}

// DeriveXpubFromMnemonic derives the xpub of a mnemonic. Unless req.Activate
// is set this is a pure derivation and the key ring is left untouched.
func (s *service) DeriveXpubFromMnemonic(ctx context.Context, req *DeriveXpubRequest) (xpub string, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpDeriveXpub, time.Since(start), err) }()

	params, err := hdkey.ParseNetwork(s.network(req.Network))
	if err != nil {
		return "", err
	}

	seedBytes, err := seed.FromMnemonic(req.Mnemonic, req.Passphrase)
	if err != nil {
		return "", err
	}
	defer seed.Wipe(seedBytes)

	keyCtx, err := hdkey.NewContext(seedBytes, params, s.basePath)
	if err != nil {
		return "", err
	}

	if !req.Activate {
		xpub = keyCtx.Xpub()
		keyCtx.Wipe()
		return xpub, nil
	}

	s.keyring.Activate(keyCtx)
	s.metrics.SetKeyContexts(s.keyring.Len())

	util.LogFromContext(ctx).Info().
		Str("xpub", keyCtx.Xpub()).
		Str("network", params.Name).
		Msg("Initialized master key from mnemonic")

	return keyCtx.Xpub(), nil
}

// GetPublicKey derives the public key at index
func (s *service) GetPublicKey(_ context.Context, xpub string, index int64) (pub *secp256k1.PublicKey, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(metrics.OpGetPublicKey, time.Since(start), err) }()

	keyCtx, err := s.keyring.Resolve(xpub)
	if err != nil {
		return nil, err
	}

	child, err := hdkey.CheckIndex(index)
	if err != nil {
		return nil, err
	}

	return keyCtx.PublicKey(child)
}
