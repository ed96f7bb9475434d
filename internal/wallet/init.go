package wallet

import (
	"context"
	"fmt"
	"os"

	"github/dlcplaza/go-dlcsigner/internal/metrics"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keyring"
	"github/dlcplaza/go-dlcsigner/internal/wallet/keystore"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// InitializeKeystore unlocks the keystore file at server startup and makes its
// key context the active one. Without a password it is read from the terminal.
func InitializeKeystore(ctx context.Context, path string, password string, keyringManager keyring.Manager, keystoreService keystore.Service, metricsService *metrics.Service) error {
	log := log.With().Str("component", "wallet_init").Str("path", path).Logger()

	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "keystore not found, create one with 'app keystore create'")
	}

	if password == "" {
		log.Info().Msg("Keystore found. Please enter password to unlock...")

		var err error
		password, err = PromptPassword("Enter keystore password: ")
		if err != nil {
			return errors.Wrap(err, "failed to read password")
		}
	}

	keyCtx, err := keystoreService.Unlock(ctx, path, password)
	if err != nil {
		return errors.Wrap(err, "failed to unlock keystore (invalid password?)")
	}

	keyringManager.Activate(keyCtx)
	metricsService.SetKeyContexts(keyringManager.Len())

	log.Info().Str("xpub", keyCtx.Xpub()).Msg("Keystore unlocked")

	return nil
}

// PromptPassword prompts for password input (hides input)
//
//nolint:forbidigo // Password input requires direct terminal I/O
func PromptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}

	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Fprint(os.Stderr, prompt)

	// Read password from terminal (hides input)
	passwordBytes, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Fprintln(os.Stderr) // New line after password input

	return string(passwordBytes), nil
}
