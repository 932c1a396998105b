package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ethanwang/hookpulse/internal/apperror"
)

var v = validator.New()

// Struct validates a struct using go-playground/validator tags.
// Returns an *apperror.AppError on failure so callers can just `return err`.
func Struct(req any) error {
	if err := v.Struct(req); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperror.BadRequest("invalid input")
		}
		return apperror.BadRequest(formatFieldError(ve[0]))
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", fe.Field())
	case "uri":
		return fmt.Sprintf("%s must be a valid URI", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
