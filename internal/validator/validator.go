package validator

import (
	"sync"

	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/invocli/invocli/internal/types"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// NewValidator builds the shared validator with the custom rules used by invoice records
func NewValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
			code := types.NormalizeCurrencyCode(fl.Field().String())
			return len(code) >= 2 && len(code) <= 10
		})
	})
	return validate
}

func GetValidator() *validator.Validate {
	return validate
}

func ValidateRequest(req interface{}) error {
	if validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before using it").
			Mark(ierr.ErrSystem)
	}

	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		hint := "Request validation failed"
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
			if len(validateErrs) > 0 {
				hint = "Invalid value for " + validateErrs[0].Field()
			}
		}
		return ierr.WithError(err).
			WithHint(hint).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidateVar checks a single value against a tag such as "email"
func ValidateVar(value interface{}, tag string) error {
	v := validate
	if v == nil {
		v = NewValidator()
	}
	if err := v.Var(value, tag); err != nil {
		return ierr.WithError(err).
			WithHintf("Value does not satisfy %s", tag).
			Mark(ierr.ErrValidation)
	}
	return nil
}
