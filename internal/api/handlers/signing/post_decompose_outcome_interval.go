package signing

import (
	"net/http"
	"strconv"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func PostDecomposeOutcomeIntervalRoute(s *api.Server) *echo.Route {
	return s.Router.Signing.POST("/decompose_outcome_interval", postDecomposeOutcomeIntervalHandler(s))
}

// Returns the minimal set of outcome patterns covering [start, end], ready to
// be used as interval_wildcards.
func postDecomposeOutcomeIntervalHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostDecomposeOutcomeIntervalPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		start, err := strconv.ParseUint(swag.StringValue(body.Start), 10, 64)
		if err != nil {
			return dlcerr.Wrap(dlcerr.KindInvalidInputEncoding, "start", err)
		}
		end, err := strconv.ParseUint(swag.StringValue(body.End), 10, 64)
		if err != nil {
			return dlcerr.Wrap(dlcerr.KindInvalidInputEncoding, "end", err)
		}

		base := int(body.Base)
		if base == 0 {
			base = s.Config.Signer.OutcomeBase
		}

		numDigits := swag.Int64Value(body.NumDigits)
		if numDigits < 1 || numDigits > int64(s.Config.Signer.MaxDigits) {
			return dlcerr.New(dlcerr.KindInvalidInputEncoding, "num_digits", "need between 1 and %d digits, got %d", s.Config.Signer.MaxDigits, numDigits)
		}

		patterns, err := outcome.DecomposeInterval(start, end, base, int(numDigits))
		if err != nil {
			return err
		}

		res := make([]string, 0, len(patterns))
		for _, p := range patterns {
			res = append(res, p.String())
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.DecomposeOutcomeIntervalResponse{
			Patterns: res,
		})
	}
}
