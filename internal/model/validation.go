package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("concept_type", func(fl validator.FieldLevel) bool {
		return ConceptType(fl.Field().String()).IsValid()
	})
	return v
}

// validateStruct validates a struct based on its validation tags
func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError formats validation errors into readable messages
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "concept_type":
		return fmt.Sprintf("%s %q is not an allowed concept type", field, e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
