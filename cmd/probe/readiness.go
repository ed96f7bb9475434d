package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/config"
)

func newReadiness() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `This command runs the readiness probe of a running server
by querying its /-/ready route.`,
		Run: func(cmd *cobra.Command, _ []string) {
			runReadiness(cmd.Context(), verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(ctx context.Context, verbose bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.DefaultServiceConfigFromEnv()

	_, took, err := probe(ctx, cfg, "/-/ready")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Readiness probe failed: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Readiness probe succeeded in %s.\n", took)
	}
}
