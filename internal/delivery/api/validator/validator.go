// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"encoding/base64"
	"reflect"
	"strings"

	"kurvalgom/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TagDataImage accepts inline JPEG or PNG data URLs with a decodable base64 payload.
const TagDataImage = "dataimage"

var imagePrefixes = []string{
	"data:image/jpeg;base64,",
	"data:image/png;base64,",
}

type echoValidator struct {
	validate *validator.Validate
}

// New returns the request validator installed on the echo server.
func New() echo.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation(TagDataImage, isDataImage)

	return &echoValidator{validate: validate}
}

func (v *echoValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// IsDataImage reports whether s is an acceptable inline image.
func IsDataImage(s string) bool {
	for _, prefix := range imagePrefixes {
		payload, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		if payload == "" {
			return false
		}
		_, err := base64.StdEncoding.DecodeString(payload)

		return err == nil
	}

	return false
}

func isDataImage(fl validator.FieldLevel) bool {
	return IsDataImage(fl.Field().String())
}

// FieldErrors flattens validation failures into field → rule pairs for the error payload.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return fields
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
