package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/tentwenty/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks merged drill settings and reports the first bad option by
// its flag name.
func Validate(cfg model.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return fmt.Errorf("--%s must be > %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Errorf("--%s must be <= %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("--%s must be one of: %s (got %q)", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("--%s is invalid", fe.Field())
	}
}
