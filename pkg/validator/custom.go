package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validity is implemented by closed enumerations that know their own members.
type Validity interface {
	Valid() bool
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("enum", validateEnum)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(Validity)
	if !ok {
		return false
	}
	return v.Valid()
}
