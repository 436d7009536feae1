// Package validators wraps go-playground/validator with the custom tags used
// by domain entities and request DTOs.
package validators

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

// New returns a validator with the custom "slug" and "phone" tags registered.
func New() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		// registration only fails on an empty tag name
		_ = v.RegisterValidation("slug", SlugValidation)
		_ = v.RegisterValidation("phone", PhoneValidation)
		instance = v
	})
	return instance
}

// Struct validates s and flattens field errors into a single readable error.
func Struct(s interface{}) error {
	err := New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: [%s]", strings.Join(messages, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}
