// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates a validator using struct tag validation.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate validates the bound request struct. Failures surface as 400s so
// handlers can rely on validated input.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
