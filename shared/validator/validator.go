package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"reservas/shared"
	"reservas/shared/amount"
	"reservas/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const (
	TagEmpty       = "empty"
	TagDatetimeAny = "datetime_any"
)

var (
	validate *val.Validate

	errEmptyBody = errors.New("request body is empty")
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report json field names so messages match the request payload
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	// money is compared in cents by min/max/gt tags
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if value, ok := field.Interface().(amount.Amount); ok {
			return value.Cents()
		}

		return nil
	}, amount.Amount{})

	err := validate.RegisterValidation(TagEmpty, func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(TagDatetimeAny, func(fl val.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := shared.ParseDate(value)

		return err == nil
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes the JSON body read from r into data and validates the result.
// Decoding and validation problems are both reported as bad requests.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if errors.Is(err, io.EOF) {
		return failure.BadRequest(errEmptyBody) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
