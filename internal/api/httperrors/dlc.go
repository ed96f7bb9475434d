package httperrors

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/types"
)

var titles = map[dlcerr.Kind]string{
	dlcerr.KindInvalidInputEncoding:   "Input is not well-formed.",
	dlcerr.KindInvalidEntropy:         "Entropy must be 16 to 64 bytes.",
	dlcerr.KindInvalidMnemonic:        "Mnemonic is invalid.",
	dlcerr.KindInvalidNetwork:         "Unknown network.",
	dlcerr.KindKeyNotInitialized:      "No key context is initialized.",
	dlcerr.KindDerivationOverflow:     "Child index is out of range.",
	dlcerr.KindInvalidHashLength:      "Hash must be 32 bytes.",
	dlcerr.KindSignerMismatch:         "Signer public key does not match the derived key.",
	dlcerr.KindInvalidEventID:         "Event id is invalid.",
	dlcerr.KindCountMismatch:          "Number of items does not match the declared count.",
	dlcerr.KindDigitCountMismatch:     "Number of digits does not match the declared count.",
	dlcerr.KindNonceCountMismatch:     "Number of nonces does not match the number of digits.",
	dlcerr.KindInvalidOraclePubkey:    "Oracle public key is invalid.",
	dlcerr.KindInvalidPoint:           "Point is not on the curve.",
	dlcerr.KindDegenerateAdaptorPoint: "Adaptor point is the point at infinity.",
	dlcerr.KindInternalCurveError:     "Internal curve error.",
}

// FromDomain translates e into the public error returned to clients.
// Caller input failures map to 400, internal curve failures to 500.
func FromDomain(e *dlcerr.Error) *HTTPError {
	code := http.StatusBadRequest
	if e.Kind.Internal() {
		code = http.StatusInternalServerError
	}

	title, ok := titles[e.Kind]
	if !ok {
		title = http.StatusText(code)
	}

	he := NewHTTPError(code, types.PublicHTTPErrorType(e.Kind.String()), title)
	he.Field = e.Field
	he.Internal = e

	if e.Kind.IsCountMismatch() {
		he.Expected = swag.Int64(int64(e.Expected))
		he.Actual = swag.Int64(int64(e.Actual))
	}
	if !e.Kind.Internal() {
		he.Detail = e.Error()
	}

	return he
}
