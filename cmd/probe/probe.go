package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/dlcplaza/go-dlcsigner/internal/config"
	"github/dlcplaza/go-dlcsigner/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

// probe performs a GET against the management route of a running server.
// Any status other than 200 is an error carrying the response body.
func probe(ctx context.Context, cfg config.Server, route string) (string, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Management.ProbeTimeout)
	defer cancel()

	url := strings.TrimSuffix(cfg.Management.ProbeURL, "/") + route

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to build probe request")
	}

	start := time.Now()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", time.Since(start), errors.Wrapf(err, "failed to probe %s", url)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	took := time.Since(start)
	if err != nil {
		return "", took, errors.Wrap(err, "failed to read probe response")
	}

	if res.StatusCode != http.StatusOK {
		return string(body), took, fmt.Errorf("probe %s returned status %d", url, res.StatusCode)
	}

	return string(body), took, nil
}
