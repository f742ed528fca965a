package domain

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsHexColor reports whether s is a css hex color such as "#fff" or "#c8e8ed".
func IsHexColor(s string) bool {
	return validate.Var(s, "required,hexcolor") == nil
}
