package util

import (
	"context"
	"fmt"
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/dlcplaza/go-dlcsigner/internal/api/httperrors"
	"github/dlcplaza/go-dlcsigner/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it.
// Returns an *httperrors.HTTPValidationError for schema violations.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unexpected echo binder")
	}

	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind body")
		return err
	}

	return validatePayload(c, v)
}

// BindAndValidatePathAndQueryParams binds the path and query params to v and validates them.
func BindAndValidatePathAndQueryParams(c echo.Context, v runtime.Validatable) error {
	binder, ok := c.Echo().Binder.(*echo.DefaultBinder)
	if !ok {
		return errors.New("unexpected echo binder")
	}

	if err := binder.BindPathParams(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind path params")
		return err
	}

	if err := binder.BindQueryParams(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind query params")
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates v before sending it with status code.
// Responses that fail their own schema are a server bug and answered with 500.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromEchoContext(c).Error().Errs("validation_errors", compositeError.Errors).Msg("Response did not match schema")
		} else {
			LogFromEchoContext(c).Error().Err(err).Msg("Failed to validate response")
		}
		return httperrors.ErrInternalServer
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		var compositeError *oerrors.CompositeError
		if errors.As(err, &compositeError) {
			LogFromEchoContext(c).Debug().Errs("validation_errors", compositeError.Errors).Msg("Payload did not match schema, returning HTTP validation error")

			valErrs := formatValidationErrors(c.Request().Context(), compositeError)

			return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), valErrs)
		}

		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
		return httperrors.ErrBadRequest
	}

	return nil
}

func formatValidationErrors(ctx context.Context, err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		var validationError *oerrors.Validation
		if errors.As(e, &validationError) {
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationError.Name),
				In:    swag.String(validationError.In),
				Error: swag.String(validationError.Error()),
			})
			continue
		}

		var compositeError *oerrors.CompositeError
		if errors.As(e, &compositeError) {
			valErrs = append(valErrs, formatValidationErrors(ctx, compositeError)...)
			continue
		}

		LogFromContext(ctx).Warn().Err(e).Str("err_type", fmt.Sprintf("%T", e)).Msg("Received unknown error type while validating payload, skipping")
	}

	return valErrs
}
