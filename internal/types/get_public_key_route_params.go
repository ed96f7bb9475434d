package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// GetPublicKeyRouteParams binds the path and query params of GET /get_public_key/:index
type GetPublicKeyRouteParams struct {

	// Child index under the base node
	Index int64 `param:"index"`

	// Key context handle, empty for the active context
	Xpub string `query:"xpub"`
}

// Validate validates this get public key route params
func (m *GetPublicKeyRouteParams) Validate(formats strfmt.Registry) error {
	var res []error

	if m.Xpub != "" {
		if err := validate.MaxLength("xpub", "query", m.Xpub, 128); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
