package signing

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/cet"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func PostVerifyCetAdaptorSigRoute(s *api.Server) *echo.Route {
	return s.Router.Signing.POST("/verify_cet_adaptor_sig", postVerifyCetAdaptorSigHandler(s))
}

// Checks a counterparty's adaptor signature for one CET. A well-formed
// signature that does not verify yields valid=false, not an error.
func postVerifyCetAdaptorSigHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostVerifyCetAdaptorSigPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		valid, err := s.CETs.VerifyAdaptorSig(ctx, &cet.VerifyRequest{
			AdaptorSig:    swag.StringValue(body.AdaptorSig),
			SigningPubkey: swag.StringValue(body.SigningPubkey),
			Sighash:       swag.StringValue(body.Sighash),
			OraclePubkey:  swag.StringValue(body.OraclePubkey),
			Nonces:        swag.StringValue(body.Nonces),
			Outcome:       swag.StringValue(body.Outcome),
			Base:          int(body.Base),
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.VerifyCetAdaptorSigResponse{
			Valid: swag.Bool(valid),
		})
	}
}
