package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator — адаптер go-playground/validator под интерфейс echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
