// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "storely/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for use as echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New constructs an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the bound request struct and converts tag failures into the
// domain's validation error so the error handler renders a 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
