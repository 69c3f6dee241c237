package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// Errors are keyed by JSON tag names, and a few domain aliases are registered.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Account passwords are at least six characters.
		v.RegisterAlias("pwd", "min=6")
		v.RegisterAlias("otp", "len=6,numeric")
	}
}

// ToDetails converts binding/validation errors into a map[field]message for
// the API error envelope.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "numeric":
		return "must be numeric"
	case "len":
		return "must be exactly " + param + " characters long"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "pwd":
		return "must be at least 6 characters"
	case "otp":
		return "must be a 6 digit code"
	default:
		if param != "" {
			return "failed " + tag + "=" + param + " validation"
		}
		return "failed " + tag + " validation"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
