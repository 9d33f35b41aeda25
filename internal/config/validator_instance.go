package config

import (
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	templateReplacer = strings.NewReplacer(
		"{seed}", "seed",
		"{width}", "1",
		"{height}", "1",
		"{category}", "category",
		"{token}", "token",
	)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("url_template", func(fl validator.FieldLevel) bool {
			return validURLTemplate(fl.Field().String())
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// validURLTemplate accepts absolute http(s) URLs once every known
// placeholder is substituted. Unknown placeholders leave braces behind and
// fail.
func validURLTemplate(tmpl string) bool {
	if strings.TrimSpace(tmpl) == "" {
		return false
	}
	expanded := templateReplacer.Replace(tmpl)
	if strings.ContainsAny(expanded, "{}") {
		return false
	}
	u, err := url.Parse(expanded)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
