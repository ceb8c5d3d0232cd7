package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates by tag; %f is the field, %p the tag parameter.
var templates = map[string]string{
	"required": "%f is required",
	"min":      "%f must be at least %p",
	"max":      "%f must be at most %p",
	"gte":      "%f must be greater than or equal to %p",
	"lte":      "%f must be less than or equal to %p",
	"oneof":    "%f must be one of %p",
	"email":    "%f must be a valid email address",
	"uuid":     "%f must be a valid uuid",
	"date":     "%f must be a date formatted as YYYY-MM-DD",
	"weekday":  "%f must be a day of the week such as monday",
}

func describe(fieldErr val.FieldError) string {
	template, ok := templates[fieldErr.Tag()]
	if !ok {
		return fieldErr.Error()
	}

	return strings.NewReplacer("%f", fieldErr.Field(), "%p", fieldErr.Param()).Replace(template)
}

// message renders every failed field, in struct order, as one sentence per field.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, len(fieldErrs))
	for i, fieldErr := range fieldErrs {
		parts[i] = describe(fieldErr)
	}

	return strings.Join(parts, "; ")
}
