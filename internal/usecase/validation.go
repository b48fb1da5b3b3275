package usecase

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "accounts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// inputValidator checks request payloads before any side effect happens.
// Pure schema validation, no I/O.
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so messages match the wire payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// ValidateRegistration schema-checks a registration payload and returns the
// first failing rule's message, keyed for the validation envelope.
func ValidateRegistration(input *RegisterInput) *domainerrors.ValidationError {
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.NewValidationError("registration", firstRuleMessage(err))
	}

	return nil
}

// ValidateLogin schema-checks a login payload.
func ValidateLogin(input *LoginInput) *domainerrors.ValidationError {
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.NewValidationError("login", firstRuleMessage(err))
	}

	return nil
}

// ValidateUpdate schema-checks the provided fields of a partial update.
func ValidateUpdate(input *UpdateInput) *domainerrors.ValidationError {
	if err := inputValidator.Struct(input); err != nil {
		return domainerrors.NewValidationError("update", firstRuleMessage(err))
	}

	return nil
}

// firstRuleMessage renders the first violated rule as a human-readable
// message. Only the first failure is reported, matching the fail-fast-on-
// first-schema-violation policy.
func firstRuleMessage(err error) string {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return "invalid input"
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", first.Field())
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", first.Field(), first.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", first.Field())
	default:
		return fmt.Sprintf("%q is invalid", first.Field())
	}
}
