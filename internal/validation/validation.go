// Package validation wraps the shared go-playground validator used by the
// visitor-facing forms.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator. Field names in reported errors are
// taken from the `form` tag, then the `json` tag, then the Go field name.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return strings.ToLower(field.Name)
		})
		validateInst = v
	})
	return validateInst
}

// Struct validates value and returns the problems keyed by field name, or
// nil when the value is valid. A non-validation failure is returned as err.
func Struct(value any) (map[string]string, error) {
	err := Instance().Struct(value)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	problems := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := problems[fe.Field()]; seen {
			continue
		}
		problems[fe.Field()] = Message(fe)
	}
	return problems, nil
}

// Message renders a human readable message for a single field error.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// Summary joins problems into one deterministic sentence.
func Summary(problems map[string]string) string {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+problems[k])
	}
	return strings.Join(parts, "; ")
}
