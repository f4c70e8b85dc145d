package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	pseudoRegex = regexp.MustCompile(`^[a-z0-9_-]{3,15}$`)
	// Unanchored: a value only needs to contain something shaped like an address.
	emailRegex = regexp.MustCompile(`[^@ \t\r\n]+@[^@ \t\r\n]+\.[^@ \t\r\n]+`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators()
}

func registerCustomValidators() {
	validate.RegisterValidation("pseudo", func(fl validator.FieldLevel) bool {
		return ValidPseudo(fl.Field().String())
	})
	validate.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
}

func ValidPseudo(pseudo string) bool {
	return pseudoRegex.MatchString(pseudo)
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateStruct runs the `validate` tags of s.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// MaxLength reports whether value has at most max characters.
func MaxLength(value string, max int) bool {
	return validate.Var(value, "max="+strconv.Itoa(max)) == nil
}
