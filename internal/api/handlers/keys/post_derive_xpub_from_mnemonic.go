package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
	"github/dlcplaza/go-dlcsigner/internal/wallet"
)

func PostDeriveXpubFromMnemonicRoute(s *api.Server) *echo.Route {
	return s.Router.Keys.POST("/derive_xpub_from_mnemonic", postDeriveXpubFromMnemonicHandler(s))
}

// Derives the xpub of a BIP39 mnemonic. With activate set the derived key
// context replaces the active one.
func postDeriveXpubFromMnemonicHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostDeriveXpubFromMnemonicPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		xpub, err := s.Keys.DeriveXpubFromMnemonic(ctx, &wallet.DeriveXpubRequest{
			Mnemonic:   swag.StringValue(body.Mnemonic),
			Passphrase: body.Passphrase,
			Network:    body.Network,
			Activate:   util.FalseIfNil(body.Activate),
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.XpubResponse{
			Xpub: swag.String(xpub),
		})
	}
}
