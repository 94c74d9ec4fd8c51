// Package validation checks request payloads and reports the first failing field.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a single field failure. It renders as {message, field}.
type Error struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// New creates a field error.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names, the client never sees go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Struct validates s and returns the first failure as *Error, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err //nolint:wrapcheck
	}

	fe := errs[0]

	return New(fe.Field(), message(s, fe))
}

func message(s any, fe validator.FieldError) string {
	l := label(s, fe)

	switch fe.Tag() {
	case "required":
		return l + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return l + " must be at least " + fe.Param() + " characters"
	case "max":
		return l + " must be at most " + fe.Param() + " characters"
	case "url":
		return l + " must be a valid URL"
	default:
		return l + " is invalid"
	}
}

// label prefers the `label` struct tag and falls back to the go field name.
func label(s any, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
		}
	}

	return fe.StructField()
}
