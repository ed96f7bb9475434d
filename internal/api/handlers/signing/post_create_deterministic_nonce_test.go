package signing_test

import (
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/test"
	"github/dlcplaza/go-dlcsigner/internal/types"
)

func TestPostCreateDeterministicNonce(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.ActivateTestKey(t, s)

		nonce := func(index int) types.DeterministicNonceResponse {
			res := test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{
				"event_id": eventID,
				"index":    index,
			}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var response types.DeterministicNonceResponse
			test.ParseResponseAndValidate(t, res, &response)
			return response
		}

		first := nonce(0)
		assert.Equal(t, first, nonce(0))
		assert.NotEqual(t, swag.StringValue(first.Public), swag.StringValue(nonce(1).Public))

		// digit indices use the full uint32 range
		high := nonce(math.MaxUint32)
		assert.NotEqual(t, swag.StringValue(first.Public), swag.StringValue(high.Public))
		assert.Equal(t, high, nonce(math.MaxUint32))
		assert.NotEqual(t, swag.StringValue(high.Public), swag.StringValue(nonce(1<<31).Public))

		assert.Len(t, swag.StringValue(first.Secret), 64)
		assert.True(t, strings.HasPrefix(swag.StringValue(first.Public), "02"), "nonce points have even Y")
	})
}

func TestPostCreateDeterministicNonceErrors(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": eventID, "index": 0}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeKEYNOTINITIALIZED)

		// event id is checked before the key
		res = test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": "", "index": 0}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDEVENTID)

		test.ActivateTestKey(t, s)

		res = test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": strings.Repeat("x", 256), "index": 0}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDEVENTID)

		res = test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": "bad\nid", "index": 0}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDEVENTID)

		res = test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": eventID, "index": -1}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDINPUTENCODING)

		res = test.PerformRequest(t, s, "POST", "/create_deterministic_nonce", test.GenericPayload{"event_id": eventID, "index": int64(math.MaxUint32) + 1}, nil)
		test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDINPUTENCODING)
	})
}
