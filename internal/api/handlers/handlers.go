package handlers

import (
	"github.com/labstack/echo/v4"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/api/handlers/common"
	"github/dlcplaza/go-dlcsigner/internal/api/handlers/keys"
	"github/dlcplaza/go-dlcsigner/internal/api/handlers/signing"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		keys.GetPublicKeyRoute(s),
		keys.PostDeriveXpubFromMnemonicRoute(s),
		keys.PostInitWithEntropyRoute(s),
		signing.PostCreateCetAdaptorSigsRoute(s),
		signing.PostCreateDeterministicNonceRoute(s),
		signing.PostDecomposeOutcomeIntervalRoute(s),
		signing.PostSignHashEcdsaRoute(s),
		signing.PostVerifyCetAdaptorSigRoute(s),
	}
}
