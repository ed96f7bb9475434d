package common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it runs a sign and verify round trip on the curve.
// Structured upon https://prometheus.io/docs/prometheus/latest/management_api/
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		var str strings.Builder
		fmt.Fprintln(&str, "Ready.")

		start := s.Clock.Now()
		errs := ProbeCurve(c.Request().Context())
		for _, err := range errs {
			fmt.Fprintf(&str, "Curve probe: %v\n", err)
		}
		fmt.Fprintf(&str, "Curve probe took %s\n", s.Clock.Now().Sub(start))

		fmt.Fprintf(&str, "Key contexts: %d (active: %t)\n", s.Keyring.Len(), s.Keyring.IsInitialized())

		if len(errs) > 0 {
			util.LogFromEchoContext(c).Error().Errs("errs", errs).Msg("Health probe failed")
			return c.String(521, str.String())
		}

		fmt.Fprintln(&str, "Probes succeeded.")

		return c.String(http.StatusOK, str.String())
	}
}
