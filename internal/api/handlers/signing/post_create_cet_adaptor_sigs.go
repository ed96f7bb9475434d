package signing

import (
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/cet"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func PostCreateCetAdaptorSigsRoute(s *api.Server) *echo.Route {
	return s.Router.Signing.POST("/create_cet_adaptor_sigs", postCreateCetAdaptorSigsHandler(s))
}

// Creates one adaptor signature per CET, each encrypted under the oracle
// attestation point of its outcome pattern. All or nothing.
func postCreateCetAdaptorSigsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostCreateCetAdaptorSigsPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.CETs.CreateAdaptorSigs(ctx, &cet.Request{
			Xpub:                body.Xpub,
			NumDigits:           int(swag.Int64Value(body.NumDigits)),
			NumCets:             int(swag.Int64Value(body.NumCets)),
			Base:                int(body.Base),
			DigitStringTemplate: body.DigitStringTemplate,
			OraclePubkey:        swag.StringValue(body.OraclePubkey),
			SigningKeyIndex:     swag.Int64Value(body.SigningKeyIndex),
			SigningPubkey:       swag.StringValue(body.SigningPubkey),
			Nonces:              swag.StringValue(body.Nonces),
			IntervalWildcards:   swag.StringValue(body.IntervalWildcards),
			Sighashes:           swag.StringValue(body.Sighashes),
		})
		if err != nil {
			return err
		}

		sigs := make([]string, 0, len(result.Signatures))
		for _, sig := range result.Signatures {
			sigs = append(sigs, hex.EncodeToString(sig.Serialize()))
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.CetAdaptorSigsResponse{
			Value:      swag.String(strings.Join(sigs, ",")),
			Signatures: sigs,
		})
	}
}
