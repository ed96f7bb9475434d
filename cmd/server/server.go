package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/api/router"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/util/command"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
)

const (
	keystoreFlag string = "keystore"
	promptFlag   string = "prompt"
)

type Flags struct {
	Keystore string
	Prompt   bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the signing server",
		Long: `Starts the signing server.

Key contexts are held in memory only. Unless a keystore is configured the
server starts without any key and waits for init_with_entropy or
derive_xpub_from_mnemonic.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runServer(cmd.Context(), flags); err != nil {
				log.Fatal().Err(err).Msg("Failed to run server")
			}
		},
	}

	cmd.Flags().StringVar(&flags.Keystore, keystoreFlag, "", "Unlock this keystore file on startup (overrides SIGNER_KEYSTORE_FILE)")
	cmd.Flags().BoolVar(&flags.Prompt, promptFlag, false, "Ask for the keystore password even if SIGNER_KEYSTORE_PASSWORD is set")

	return cmd
}

func runServer(ctx context.Context, flags Flags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.DefaultServiceConfigFromEnv()
	if flags.Keystore != "" {
		cfg.Signer.KeystoreFile = flags.Keystore
	}
	if flags.Prompt {
		cfg.Signer.KeystorePassword = ""
	}

	return command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		log.Info().
			Str("network", s.Config.Signer.DefaultNetwork).
			Str("basePath", s.Config.Signer.BasePath).
			Int("workers", s.Config.Signer.Workers).
			Msg("Starting signer")

		if s.Config.Signer.KeystoreFile != "" {
			if err := wallet.InitializeKeystore(ctx, s.Config.Signer.KeystoreFile, s.Config.Signer.KeystorePassword, s.Keyring, s.Keystore, s.Metrics); err != nil {
				return pkgerrors.Wrap(err, "failed to initialize keystore")
			}
		}

		if err := router.Init(s); err != nil {
			return pkgerrors.Wrap(err, "failed to initialize router")
		}

		errCh := make(chan error, 1)
		go func() {
			if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
				return
			}
			errCh <- nil
		}()

		select {
		case <-ctx.Done():
			log.Info().Msg("Received shutdown signal")
			return nil
		case err := <-errCh:
			return err
		}
	})
}
