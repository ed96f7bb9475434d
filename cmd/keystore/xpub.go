package keystore

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/util/command"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"
)

type xpubFlags struct {
	Path   string
	Unlock bool
}

func newXpub() *cobra.Command {
	var flags xpubFlags

	cmd := &cobra.Command{
		Use:   "xpub",
		Short: "Prints the xpub of a keystore file",
		Long: `Prints the xpub recorded in a keystore file.

With --unlock the file is decrypted and the xpub is derived again from the
mnemonic, which also checks the password.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runXpub(cmd.Context(), flags); err != nil {
				log.Fatal().Err(err).Msg("Failed to read keystore")
			}
		},
	}

	cfg := config.DefaultServiceConfigFromEnv()
	defaultPath := cfg.Signer.KeystoreFile
	if defaultPath == "" {
		defaultPath = keystore.DefaultPath()
	}

	cmd.Flags().StringVar(&flags.Path, pathFlag, defaultPath, "Keystore file to read")
	cmd.Flags().BoolVar(&flags.Unlock, unlockFlag, false, "Decrypt the keystore and derive the xpub from the mnemonic")

	return cmd
}

func runXpub(ctx context.Context, flags xpubFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg)

	svc := keystore.NewService(keystore.DefaultScryptParams())

	if !flags.Unlock {
		file, err := svc.Load(ctx, flags.Path)
		if err != nil {
			return err
		}

		fmt.Println(file.Xpub)
		return nil
	}

	password := cfg.Signer.KeystorePassword
	if password == "" {
		var err error
		if password, err = wallet.PromptPassword("Keystore password: "); err != nil {
			return err
		}
	}

	keyCtx, err := svc.Unlock(ctx, flags.Path, password)
	if err != nil {
		return errors.Wrap(err, "failed to unlock keystore")
	}
	defer keyCtx.Wipe()

	fmt.Println(keyCtx.Xpub())
	return nil
}
