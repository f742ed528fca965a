package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) ([]ValidationError, bool) {
	err := v.validate.Struct(i)
	if err == nil {
		return nil, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ValidationError{{Code: "INVALID", Message: err.Error()}}, false
	}

	errs := make([]ValidationError, 0, len(validationErrors))
	for _, err := range validationErrors {
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Namespace())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Namespace(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must not exceed %s", err.Namespace(), err.Param())
		case "hexcolor":
			message = fmt.Sprintf("%s must be a hex color", err.Namespace())
		case "url":
			message = fmt.Sprintf("%s must be a url", err.Namespace())
		case "http_url":
			message = fmt.Sprintf("%s must be an http(s) url", err.Namespace())
		default:
			message = fmt.Sprintf("%s failed %s validation", err.Namespace(), err.Tag())
		}

		errs = append(errs, ValidationError{
			Field:   err.Namespace(),
			Code:    strings.ToUpper(err.Tag()),
			Message: message,
		})
	}

	return errs, false
}

// Err folds the validation result into a single error, or nil when i is valid.
func (v *Validator) Err(i any) error {
	errs, ok := v.Validate(i)
	if ok {
		return nil
	}

	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, e)
	}

	return errors.Join(joined...)
}
