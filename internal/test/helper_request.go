package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/dlcplaza/go-dlcsigner/internal/api"
	"github/dlcplaza/go-dlcsigner/internal/api/httperrors"
	"github/dlcplaza/go-dlcsigner/internal/types"
)

type GenericPayload map[string]any

func PerformRequestWithParams(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header, queryParams map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for k, v := range queryParams {
			q.Add(k, v)
		}

		req.URL.RawQuery = q.Encode()
	}

	if headers != nil {
		req.Header = headers
	}

	if body != nil && len(req.Header.Get(echo.HeaderContentType)) == 0 {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()

	s.Echo.ServeHTTP(res, req)

	return res
}

func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	return PerformRequestWithParams(t, s, method, path, body, headers, nil)
}

func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.NewDecoder(res.Result().Body).Decode(v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}

func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)

	if err := v.Validate(strfmt.Default); err != nil {
		t.Fatalf("Failed to validate response: %v", err)
	}
}

// RequireHTTPError checks status, type and title of an error response.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpErr *httperrors.HTTPError) types.PublicHTTPError {
	t.Helper()

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, *httpErr.Status, *response.Status)
	require.Equal(t, *httpErr.Type, *response.Type)
	require.Equal(t, *httpErr.Title, *response.Title)

	return response
}

// RequireErrorType checks status and type of an error response.
func RequireErrorType(t *testing.T, res *httptest.ResponseRecorder, status int, errorType types.PublicHTTPErrorType) types.PublicHTTPError {
	t.Helper()

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, int64(status), *response.Status, "%+v", response)
	require.Equal(t, errorType, *response.Type, "%+v", response)

	return response
}
