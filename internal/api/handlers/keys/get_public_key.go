package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/secp"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/util"
)

func GetPublicKeyRoute(s *api.Server) *echo.Route {
	return s.Router.Keys.GET("/get_public_key/:index", getPublicKeyHandler(s))
}

func getPublicKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetPublicKeyRouteParams
		if err := util.BindAndValidatePathAndQueryParams(c, &params); err != nil {
			return err
		}

		pub, err := s.Keys.GetPublicKey(ctx, params.Xpub, params.Index)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.PublicKeyResponse{
			Value: swag.String(secp.EncodePoint(pub)),
		})
	}
}
