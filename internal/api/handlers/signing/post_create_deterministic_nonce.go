package signing

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func PostCreateDeterministicNonceRoute(s *api.Server) *echo.Route {
	return s.Router.Signing.POST("/create_deterministic_nonce", postCreateDeterministicNonceHandler(s))
}

// Derives the announcement nonce of one event digit. Identical requests
// return identical nonces.
func postCreateDeterministicNonceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostCreateDeterministicNoncePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		eventID := swag.StringValue(body.EventID)
		if err := oracle.ValidateEventID(eventID); err != nil {
			return err
		}

		index, err := oracle.CheckIndex(swag.Int64Value(body.Index))
		if err != nil {
			return err
		}

		nonce, err := s.Nonces.CreateDeterministicNonce(ctx, &oracle.NonceRequest{
			Xpub:    body.Xpub,
			EventID: eventID,
			Index:   index,
		})
		if err != nil {
			return err
		}

		// Clear nonce secret after use
		defer nonce.Zero()

		return util.ValidateAndReturn(c, http.StatusOK, &types.DeterministicNonceResponse{
			Secret: swag.String(secp.EncodeScalar(&nonce.Secret)),
			Public: swag.String(secp.EncodePoint(nonce.Public)),
		})
	}
}
