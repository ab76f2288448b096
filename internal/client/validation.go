package client

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// validate checks request structs before they leave the process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("notblank", validators.NotBlank)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}

// requireID rejects empty and whitespace-only identifiers.
func requireID(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", lulu.ErrInvalidArgument, name)
	}

	return nil
}

// requireRequest rejects a nil request and runs its struct rules.
func requireRequest[T any](name string, request *T) error {
	if request == nil {
		return fmt.Errorf("%w: %s is required", lulu.ErrInvalidArgument, name)
	}

	return validateStruct(request)
}

func validateStruct(value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fmt.Errorf("%w: %s", lulu.ErrInvalidArgument, describe(fieldErrors[0]))
	}

	return fmt.Errorf("%w: %s", lulu.ErrInvalidArgument, err.Error())
}

func describe(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fieldError.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldError.Tag())
	}
}
