package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers all project-specific validation rules
// on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("plausible_year", isPlausibleModelYear); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone_like", looksLikePhoneNumber); err != nil {
		return err
	}
	return nil
}

// Model years are accepted from 1980 up to next year's models.
func isPlausibleModelYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1980 && year <= int64(time.Now().Year()+1)
}

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,17}$`)

func looksLikePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}
