package validators

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// TagName exposes struct fields under their json names, so validation error
// keys match what the client actually sent ("director_name", not
// "DirectorName").
func TagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Capitalized reports whether the string starts with an uppercase letter.
// Person-name fields (director names, profile first/last name) require it.
func Capitalized(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	runes := []rune(field.String())
	if len(runes) == 0 {
		return false
	}
	return unicode.IsUpper(runes[0]) && unicode.IsLetter(runes[0])
}
