package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(envTagName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// envTagName reports config fields by the variable that sets them.
func envTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("env"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
