package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/dlc/cet"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
)

// KeyService interface for master key management
// Alias to wallet.Service for API access
type KeyService = wallet.Service

// SignerService interface for ECDSA signing with derived keys
type SignerService = signer.Service

// NonceService interface for oracle nonce derivation
type NonceService = oracle.Service

// CETService interface for CET adaptor signatures
type CETService = cet.Service

// KeystoreService interface for the encrypted mnemonic file
type KeystoreService = keystore.Service

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	Keys       *echo.Group
	Signing    *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Clock    time2.Clock
	Metrics  *metrics.Service
	Keyring  keyring.Manager
	Keys     KeyService
	Signer   SignerService
	Nonces   NonceService
	CETs     CETService
	Keystore KeystoreService
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	metrics *metrics.Service,
	keyringManager keyring.Manager,
	keys KeyService,
	signer SignerService,
	nonces NonceService,
	cets CETService,
	keystore KeystoreService,
) *Server {
	return &Server{
		Config:   cfg,
		Clock:    clock,
		Metrics:  metrics,
		Keyring:  keyringManager,
		Keys:     keys,
		Signer:   signer,
		Nonces:   nonces,
		CETs:     cets,
		Keystore: keystore,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Keyring != nil {
		log.Debug().Msg("Wiping key contexts")
		s.Keyring.Clear()
	}

	return errs
}
