package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"salas/shared/failure"
	"salas/shared/timezone"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var validate = newValidate()

func newValidate() *val.Validate {
	validate := val.New(val.WithRequiredStructEnabled())

	custom := map[string]val.Func{
		"date":    isDate,
		"weekday": isWeekday,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return validate
}

// isDate accepts a real YYYY-MM-DD calendar date.
func isDate(field val.FieldLevel) bool {
	_, err := timezone.ParseDate(field.Field().String())

	return err == nil
}

func isWeekday(field val.FieldLevel) bool {
	return slices.Contains(weekdays, strings.ToLower(field.Field().String()))
}

// Validate decodes a JSON body into data and validates it. Both failures are bad requests.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag))
}

// ValidateID checks a path id. Ids are uuids, so anything else names no entity and is
// reported as a missing entity rather than reaching the database.
func ValidateID(id, entity string) error {
	if validate.Var(id, "required,uuid") != nil {
		return failure.NotFound(entity + " not found") //nolint:wrapcheck
	}

	return nil
}

func asFailure(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
