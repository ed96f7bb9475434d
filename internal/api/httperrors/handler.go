package httperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/types"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

var DefaultHTTPErrorHandlerConfig = HTTPErrorHandlerConfig{
	HideInternalServerErrorDetails: true,
}

func HTTPErrorHandler(err error, c echo.Context) {
	HTTPErrorHandlerWithConfig(DefaultHTTPErrorHandlerConfig)(err, c)
}

// HTTPErrorHandlerWithConfig renders every error returned by a handler as JSON.
// Errors of the signer core are translated with FromDomain.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int64
		var resp any

		var he *HTTPError
		var hve *HTTPValidationError
		var de *dlcerr.Error
		var ehe *echo.HTTPError

		switch {
		case errors.As(err, &hve):
			code = *hve.Status
			resp = hve
		case errors.As(err, &he):
			code = *he.Status
			resp = he
		case errors.As(err, &de):
			mapped := FromDomain(de)
			code = *mapped.Status
			resp = mapped
		case errors.As(err, &ehe):
			mapped := NewFromEcho(ehe)
			code = *mapped.Status
			resp = mapped
		default:
			mapped := NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !config.HideInternalServerErrorDetails {
				mapped.Detail = err.Error()
			}
			code = *mapped.Status
			resp = mapped
		}

		l := logger(c)
		if code >= http.StatusInternalServerError {
			l.Error().Err(err).Int64("status", code).Msg("Request failed")
		} else {
			l.Debug().Err(err).Int64("status", code).Msg("Request rejected")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(int(code))
		} else {
			err = c.JSON(int(code), resp)
		}
		if err != nil {
			l.Warn().Err(err).Msg("Failed to handle HTTP error")
		}
	}
}

func logger(c echo.Context) *zerolog.Logger {
	l := zerolog.Ctx(c.Request().Context())
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}
