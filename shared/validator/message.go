package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":     "{field} is required",
		"gt":           "{field} must be greater than {param}",
		"gte":          "{field} must be greater than or equal to {param}",
		"lte":          "{field} must be less than or equal to {param}",
		"oneof":        "{field} must be one of {param}",
		"max":          "{field} must be less than or equal to {param}",
		"min":          "{field} must be greater than or equal to {param}",
		TagEmpty:       "{field} must be empty",
		TagDatetimeAny: "{field} must be a date (YYYY-MM-DD) or a datetime (RFC3339)",
	}
)

// message returns a readable text for the first failed rule.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				continue
			}

			if valErr.Tag() == "max" && valErr.Kind() == reflect.String {
				errStr = "{field} must be at most {param} characters long"
			}

			errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

			return errStr
		}

		return valErrors.Error()
	}

	return err.Error()
}
