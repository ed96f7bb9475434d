package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/config"
)

func newLiveness() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `This command runs the liveness probes of a running server
by querying its /-/healthy route.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runLiveness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(ctx context.Context, verbose bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultServiceConfigFromEnv()

	body, took, err := probe(ctx, cfg, "/-/healthy")
	if verbose {
		fmt.Print(body)
		fmt.Printf("Liveness probe took %s\n", took)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Liveness probe failed: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Println("Liveness probe succeeded.")
	}
}
