// Package validation checks write payloads before they reach the store.
//
// Only the first violation is reported, in field declaration order.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/farellandr/resultboard/internal/apperror"
	"github.com/farellandr/resultboard/internal/models"
)

type normalizer interface {
	Normalize()
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return field.Name
			}
			return name
		})
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
			_, err := models.ParseEventDate(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Validate trims the input in place and checks it against its struct tags.
func Validate(input any) error {
	if n, ok := input.(normalizer); ok {
		n.Normalize()
	}

	err := engine().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.Validation(message(fieldErrs[0]))
	}
	return apperror.Validation(err.Error())
}

func message(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, found := strings.Cut(path, "."); found {
		path = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", path)
	case "uuid":
		return fmt.Sprintf("%q must be a valid id", path)
	case "eventdate":
		return fmt.Sprintf("%q must be a valid date", path)
	default:
		return fmt.Sprintf("%q failed the %q rule", path, fe.Tag())
	}
}

// FromDecodeError turns a JSON decoding failure into a validation error that
// names the offending field where the decoder knows it.
func FromDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "value"
		}
		return apperror.Validation(fmt.Sprintf("%q must be %s", field, describeKind(typeErr.Type)))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperror.Validation("Request body must be valid JSON")
	default:
		return apperror.Validation(err.Error())
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "of a different type"
	}
	switch t.Kind() {
	case reflect.Pointer:
		return describeKind(t.Elem())
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Struct, reflect.Map:
		return "of type object"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "of type " + t.Kind().String()
	}
}
