package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// personNameRe allows letters (including Latin-1 accents), spaces, hyphens
// and apostrophes — the character set accepted for first and last names.
var personNameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s\-']+$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in error messages come from the json struct tags, matching the
// keys of the request payload.
func NewValidator() *echoValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures come back as a
// domain.ValidationErrors map (field path → message) which the central error
// handler renders as {"errors": {...}} with a 400 status.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make(domain.ValidationErrors, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = fieldError(fe)
			}
			return out
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must contain at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "person_name":
		return field + " may only contain letters, spaces, hyphens and apostrophes"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
