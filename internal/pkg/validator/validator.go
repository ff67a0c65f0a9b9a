package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Error carries the per-field failures from a rejected struct so
// handlers can surface them in the error envelope details.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string { return "validation failed" }

// Validate struct fields against their validate tags. Returns nil when
// the value passes.
func Validate(v interface{}) map[string]string {
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

// Check is Validate returning an error services can pass up.
func Check(v interface{}) error {
	if fields := Validate(v); fields != nil {
		return &Error{Fields: fields}
	}
	return nil
}
