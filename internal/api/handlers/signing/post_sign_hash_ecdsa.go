package signing

import (
	"encoding/hex"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet/hdkey"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
)

func PostSignHashEcdsaRoute(s *api.Server) *echo.Route {
	return s.Router.Signing.POST("/sign_hash_ecdsa", postSignHashEcdsaHandler(s))
}

// Signs a 32-byte digest with the derived key at index. The request is
// rejected unless signer_pubkey is the public key of that key.
func postSignHashEcdsaHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostSignHashEcdsaPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		hash, err := secp.ParseHash("hash", swag.StringValue(body.Hash))
		if err != nil {
			return err
		}

		index, err := hdkey.CheckIndex(swag.Int64Value(body.Index))
		if err != nil {
			return err
		}

		signerPubkey, err := secp.ParsePointHex("signer_pubkey", swag.StringValue(body.SignerPubkey))
		if err != nil {
			return err
		}

		resp, err := s.Signer.SignHash(ctx, &signer.SignHashRequest{
			Xpub:         body.Xpub,
			Index:        index,
			Hash:         hash,
			SignerPubkey: signerPubkey,
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SignHashEcdsaResponse{
			Value:   swag.String(hex.EncodeToString(resp.DER)),
			Compact: swag.String(hex.EncodeToString(resp.Compact)),
		})
	}
}
