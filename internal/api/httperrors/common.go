package httperrors

import (
	"net/http"

	"github/dlcplaza/go-dlcsigner/internal/types"
)

var (
	ErrBadRequest         = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest))
	ErrNotFound           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusNotFound))
	ErrInternalServer     = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
	ErrServiceUnavailable = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusServiceUnavailable))
)
