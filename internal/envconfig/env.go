package envconfig

import (
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Get returns the value of the requested environment variable, or the
// fallback when the variable is unset or blank. Feature keys in this service
// use an empty fallback: the empty string means the feature is off.
func Get(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return fallback
}

// Validate checks a loaded configuration struct against its validator tags.
// Constraints that depend on other fields stay with the caller.
func Validate(v any) error {
	return validate.Struct(v)
}
