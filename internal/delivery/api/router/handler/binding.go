package handler

import (
	"encoding/json"
	"reflect"

	domainerrors "charity/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the JSON body into req and checks it against its schema tags.
// A body without a Content-Type is read as JSON. Undecodable bodies are reported as
// unprocessable, naming the field when a value has the wrong JSON type.
func bindAndValidate(c echo.Context, req any) error {
	if c.Request().Header.Get(echo.HeaderContentType) == "" {
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if err := c.Bind(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domainerrors.NewValidationError(domainerrors.FieldError{
				Field:   typeErr.Field,
				Message: typeErr.Field + " must be " + jsonKind(typeErr.Type),
			})
		}

		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "a valid value"
	}
}
