// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"agrinet/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

// Validate runs the struct tags of i.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens validation failures into field -> rule pairs for the error envelope.
// It returns nil for errors that did not come from Validate.
func FieldErrors(err error) map[string]string {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return fields
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		for _, tag := range []string{"query", "param", "form"} {
			if alt := field.Tag.Get(tag); alt != "" {
				return alt
			}
		}

		return field.Name
	}

	return name
}
