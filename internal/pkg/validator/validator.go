// Package validator wraps a shared go-playground validator instance for the
// `validate` tags on domain structs.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check runs struct validation and returns the offending fields keyed by
// field name, or nil when the value is valid.
func Check(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
