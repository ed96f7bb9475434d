package signing_test

import (
	"encoding/hex"
	"net/http"
	"strings"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/dlc/adaptor"
	"github/dlcplaza/go-dlcsigner/internal/dlc/oracle"
	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
	"github/dlcplaza/go-dlcsigner/internal/test"
	"github/dlcplaza/go-dlcsigner/internal/types"
	"github/dlcplaza/go-dlcsigner/internal/wallet/signer"
)

func cetPayload(t *testing.T, s *api.Server, a *announcement, numCets int, wildcards string) test.GenericPayload {
	t.Helper()

	_, hashes := sighashes(numCets)

	return test.GenericPayload{
		"num_digits":            len(a.nonces),
		"num_cets":              numCets,
		"digit_string_template": strings.Repeat("?", len(a.nonces)),
		"oracle_pubkey":         a.oraclePubkey(),
		"signing_key_index":     7,
		"signing_pubkey":        publicKeyHex(t, s, 7),
		"nonces":                a.nonceList(),
		"interval_wildcards":    wildcards,
		"sighashes":             hashes,
	}
}

func TestPostCreateCetAdaptorSigs(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.ActivateTestKey(t, s)

		a := newAnnouncement(t, 3)
		hashes, _ := sighashes(2)
		payload := cetPayload(t, s, a, 2, "000,1??")

		res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CetAdaptorSigsResponse
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.Signatures, 2)
		assert.Equal(t, strings.Join(response.Signatures, ","), swag.StringValue(response.Value))

		// the oracle attests 000 and later 101, each unlocks exactly its CET
		outcomes := [][]int{{0, 0, 0}, {1, 0, 1}}
		patterns := []string{"000", "1??"}
		for i, sigHex := range response.Signatures {
			raw, err := hex.DecodeString(sigHex)
			require.NoError(t, err)
			require.Len(t, raw, adaptor.Size)

			sig, err := adaptor.Parse("sig", raw)
			require.NoError(t, err)

			pattern, err := outcome.ParsePattern("pattern", patterns[i], 2, 3)
			require.NoError(t, err)

			secret, err := oracle.AdaptorSecret(a.attest(outcomes[i]), pattern)
			require.NoError(t, err)

			final, err := adaptor.Decrypt(sig, &secret)
			require.NoError(t, err)
			assert.True(t, signer.Verify(publicKey(t, s, 7), hashes[i][:], final.Serialize()), "cet %d", i)
		}

		// identical requests yield identical signatures
		res = test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var again types.CetAdaptorSigsResponse
		test.ParseResponseAndValidate(t, res, &again)
		assert.Equal(t, response.Signatures, again.Signatures)
	})
}

func TestPostCreateCetAdaptorSigsErrors(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.ActivateTestKey(t, s)

		a := newAnnouncement(t, 3)

		t.Run("nonce count", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			payload["nonces"] = strings.Join(strings.Split(a.nonceList(), ",")[:2], ",")

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			response := test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeNONCECOUNTMISMATCH)
			assert.Equal(t, int64(3), swag.Int64Value(response.Expected))
			assert.Equal(t, int64(2), swag.Int64Value(response.Actual))
		})

		t.Run("cet count", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			payload["num_cets"] = 3

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeCOUNTMISMATCH)
		})

		t.Run("template length", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			payload["digit_string_template"] = "??"

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeDIGITCOUNTMISMATCH)
		})

		t.Run("oracle pubkey", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			payload["oracle_pubkey"] = "00"

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDORACLEPUBKEY)
		})

		t.Run("signer", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			payload["signing_pubkey"] = publicKeyHex(t, s, 8)

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeSIGNERMISMATCH)
		})

		t.Run("missing field", func(t *testing.T) {
			payload := cetPayload(t, s, a, 2, "000,1??")
			delete(payload, "sighashes")

			res := test.PerformRequest(t, s, "POST", "/create_cet_adaptor_sigs", payload, nil)
			test.RequireErrorType(t, res, http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric)
		})
	})
}
