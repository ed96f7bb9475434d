package keystore

import (
	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/util/command"
)

const (
	pathFlag     string = "path"
	networkFlag  string = "network"
	basePathFlag string = "base-path"
	generateFlag string = "generate"
	bitsFlag     string = "bits"
	unlockFlag   string = "unlock"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newCreate(),
		newXpub(),
	)
}
