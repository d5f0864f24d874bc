// Package forms carries validated user input into the services. Field rules
// are declared as validator tags on the form structs; uniqueness checks stay
// in the services because they need a repository lookup.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/PePetrov96/epicbyte/internal/i18n"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the form and returns field-scoped localized messages.
// An empty map means the input passed.
func Check(form any, locale string) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": i18n.Resolve("error.required", locale)}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe, locale)
	}
	return out
}

func messageFor(fe validator.FieldError, locale string) string {
	switch fe.Tag() {
	case "required", "oneof":
		return i18n.Resolve("error.required", locale)
	case "email":
		return i18n.Resolve("error.email", locale)
	case "gte", "gt":
		if fe.Field() == "price" || fe.Field() == "printLength" {
			return i18n.Resolve("error.price", locale)
		}
		return i18n.Resolve("error.required", locale)
	case "min", "max":
		if fe.Field() == "password" {
			return i18n.Resolve("error.password.length", locale)
		}
		return i18n.Resolve("error.required", locale)
	case "eqfield":
		return i18n.Resolve("error.password.match", locale)
	default:
		return i18n.Resolve("error.required", locale)
	}
}
