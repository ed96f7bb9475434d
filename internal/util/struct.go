package util

import (
	"reflect"

	"github.com/pkg/errors"
)

var errNotInitialized = errors.New("component not initialized")

// IsStructInitialized checks that every exported field of the struct s points to
// is set. Fields tagged `wire:"-"` are skipped, they are initialized separately.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.Wrap(errNotInitialized, "nil struct")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.Wrapf(errNotInitialized, "expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}
		if v.Field(i).IsZero() {
			return errors.Wrapf(errNotInitialized, "field %s", field.Name)
		}
	}

	return nil
}
