package service

import (
	"fmt"

	"go-inventory-api/pkg/validator"
)

// ValidationError is returned when a request fails schema validation.
// Handlers map it to a 400 with the failing field and tag.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.Field, e.Tag)
}

// validateStruct runs struct validation and surfaces the first failure.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Field: errs[0].FailedField, Tag: errs[0].Tag}
	}
	return nil
}
