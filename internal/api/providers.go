package api

import (
	"github.com/dropbox/godropbox/time2"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/dlc/cet"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirement for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock() time2.Clock {
	return time2.DefaultClock
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeyring(cfg config.Server) keyring.Manager {
	return keyring.NewManager(cfg.Signer.MaxKeyContexts)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeyService(cfg config.Server, keyringManager keyring.Manager, metricsService *metrics.Service) KeyService {
	return wallet.NewService(keyringManager, metricsService, cfg.Signer.BasePath, cfg.Signer.DefaultNetwork)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewSignerService(keyringManager keyring.Manager, metricsService *metrics.Service) SignerService {
	return signer.NewService(keyringManager, metricsService)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewNonceService(keyringManager keyring.Manager, metricsService *metrics.Service) NonceService {
	return oracle.NewService(keyringManager, metricsService)
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewCETService(cfg config.Server, keyringManager keyring.Manager, metricsService *metrics.Service) CETService {
	return cet.NewService(keyringManager, metricsService, cet.Limits{
		MaxDigits:   cfg.Signer.MaxDigits,
		MaxCets:     cfg.Signer.MaxCets,
		Workers:     cfg.Signer.Workers,
		DefaultBase: cfg.Signer.OutcomeBase,
	})
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeystoreService() KeystoreService {
	return keystore.NewService(keystore.DefaultScryptParams())
}
