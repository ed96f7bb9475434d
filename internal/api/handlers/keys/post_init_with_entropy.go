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

func PostInitWithEntropyRoute(s *api.Server) *echo.Route {
	return s.Router.Keys.POST("/init_with_entropy", postInitWithEntropyHandler(s))
}

// Establishes a master key from raw entropy and makes it the active key context.
func postInitWithEntropyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostInitWithEntropyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		xpub, err := s.Keys.InitWithEntropy(ctx, &wallet.InitWithEntropyRequest{
			Entropy: swag.StringValue(body.Entropy),
			Network: body.Network,
		})
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.XpubResponse{
			Xpub: swag.String(xpub),
		})
	}
}
