package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/cmd/env"
	"github/dlcplaza/go-dlcsigner/cmd/keystore"
	"github/dlcplaza/go-dlcsigner/cmd/probe"
	"github/dlcplaza/go-dlcsigner/cmd/server"
	"github/dlcplaza/go-dlcsigner/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A DLC key management and signing service written in Go.
Holds HD key contexts in memory and produces ECDSA, nonce and
CET adaptor signatures over a JSON API.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		keystore.New(),
		probe.New(),
		server.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
