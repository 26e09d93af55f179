package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

// RegisterCustomValidations wires the request-level validations used by the
// binding tags in this package into gin's validator engine.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRe.MatchString(fl.Field().String())
	})
}
