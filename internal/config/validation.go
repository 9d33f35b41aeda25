package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	wferrors "github.com/alexisbeaulieu97/wireframe/pkg/errors"
)

// ValidateConfig checks field constraints on a parsed configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return wferrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return wferrors.NewValidationError(field, msg, err)
	}

	return wferrors.NewValidationError("config", err.Error(), err)
}

// yamlPath drops the root struct name from the yaml-tagged namespace.
func yamlPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
