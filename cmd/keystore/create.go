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
	"github/dlcplaza/go-dlcsigner/internal/wallet/seed"
)

type createFlags struct {
	Path     string
	Network  string
	BasePath string
	Generate bool
	Bits     int
}

func newCreate() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encrypts a mnemonic into a new keystore file",
		Long: `Encrypts a BIP39 mnemonic with a password and writes it to a new keystore file.

The mnemonic is read from the terminal unless --generate is given, in which
case a fresh one is generated and printed exactly once. Existing files are
never overwritten.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runCreate(cmd.Context(), flags); err != nil {
				log.Fatal().Err(err).Msg("Failed to create keystore")
			}
		},
	}

	cfg := config.DefaultServiceConfigFromEnv()
	defaultPath := cfg.Signer.KeystoreFile
	if defaultPath == "" {
		defaultPath = keystore.DefaultPath()
	}

	cmd.Flags().StringVar(&flags.Path, pathFlag, defaultPath, "Keystore file to write")
	cmd.Flags().StringVar(&flags.Network, networkFlag, cfg.Signer.DefaultNetwork, "Network tag of the xpub (mainnet, testnet, signet, regtest)")
	cmd.Flags().StringVar(&flags.BasePath, basePathFlag, cfg.Signer.BasePath, "Derivation base path")
	cmd.Flags().BoolVar(&flags.Generate, generateFlag, false, "Generate a new mnemonic instead of reading one")
	cmd.Flags().IntVar(&flags.Bits, bitsFlag, 256, "Entropy size of a generated mnemonic (128-256, multiple of 32)")

	return cmd
}

func runCreate(ctx context.Context, flags createFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg)

	var (
		mnemonic string
		err      error
	)
	if flags.Generate {
		mnemonic, err = seed.NewMnemonic(flags.Bits)
	} else {
		mnemonic, err = wallet.PromptPassword("Mnemonic: ")
	}
	if err != nil {
		return err
	}

	password, err := wallet.PromptPassword("Keystore password: ")
	if err != nil {
		return err
	}
	confirm, err := wallet.PromptPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	svc := keystore.NewService(keystore.DefaultScryptParams())
	file, err := svc.Create(ctx, flags.Path, &keystore.CreateRequest{
		Mnemonic: mnemonic,
		Password: password,
		Network:  flags.Network,
		BasePath: flags.BasePath,
	})
	if err != nil {
		return err
	}

	if flags.Generate {
		fmt.Printf("Mnemonic (write it down, it is not shown again):\n%s\n\n", mnemonic)
	}

	fmt.Printf("Keystore: %s\nXpub:     %s\n", flags.Path, file.Xpub)

	return nil
}
