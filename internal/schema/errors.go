package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports every violated constraint found while parsing one
// raw record, not just the first. It is a data error, never a panic: the
// upstream API drifting from its contract is an expected runtime condition.
type ValidationError struct {
	Entity string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed validation: %s", e.Entity, strings.Join(e.Errors, "; "))
}

// validate is shared across the package; the instance is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// translate converts validator errors into stable human-readable messages
// keyed by the JSON field name, preserving struct field order.
func translate(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe)
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			if fe.Kind().String() == "string" {
				msgs = append(msgs, fmt.Sprintf("%s must not be empty", field))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			}
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return msgs
}

// jsonFieldName lowercases the struct namespace into the snake_case JSON
// names callers actually see in payloads.
func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "ID":
		return "id"
	case "Name":
		return "name"
	case "FlightNumber":
		return "flight_number"
	case "DateUTC":
		return "date_utc"
	default:
		return strings.ToLower(fe.Field())
	}
}
