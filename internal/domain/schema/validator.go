// Package schema holds the request schemas of every entity the API accepts.
//
// A schema is validated with Validator.Validate and then converted into its
// entity with Normalize, which is also where identifier fields are parsed.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "charity/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// enum is implemented by the closed enumerations in the entity package.
type enum interface {
	IsValid() bool
	Values() []string
}

// Validator validates request schemas and reports failures by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom "enum" tag registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("enum", validateEnum)

	return &Validator{validate: v}
}

// Validate checks s against its struct tags. It satisfies echo.Validator.
// A failure is returned as *errors.ValidationError.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "schema validation")
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func validateEnum(fl validator.FieldLevel) bool {
	e, ok := asEnum(fl.Field().Interface())

	return ok && e.IsValid()
}

func asEnum(value any) (enum, bool) {
	if e, ok := value.(enum); ok {
		return e, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		e, ok := rv.Elem().Interface().(enum)

		return e, ok
	}

	return nil, false
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "enum":
		if e, ok := asEnum(fe.Value()); ok {
			return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(e.Values(), " "))
		}

		return field + " has an unsupported value"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
