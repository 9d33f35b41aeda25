package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/wireframe/internal/config"
	wferrors "github.com/alexisbeaulieu97/wireframe/pkg/errors"
)

// validateVar checks a flag value against a validator tag expression.
func validateVar(flag string, value any, tag string) error {
	err := config.GetValidator().Var(value, tag)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		msg := fmt.Sprintf("value %v failed validation for tag '%s'", value, ves[0].Tag())
		if ves[0].Param() != "" {
			msg = fmt.Sprintf("value %v failed validation for tag '%s=%s'", value, ves[0].Tag(), ves[0].Param())
		}
		return wferrors.NewValidationError("--"+flag, msg, err)
	}
	return wferrors.NewValidationError("--"+flag, err.Error(), err)
}
