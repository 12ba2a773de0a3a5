// File: internal/api/validation.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldErrors 是無法對應到單一欄位時使用的 key
const NonFieldErrors = "non_field_errors"

// FieldErrors 以欄位名稱對應錯誤訊息
// swagger:model api.FieldErrors
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator 建立以 json tag 作為欄位名稱的 validator
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewFieldErrors 把 bind 或 validate 的錯誤轉成欄位錯誤
func NewFieldErrors(err error) FieldErrors {
	out := FieldErrors{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Add(fe.Field(), validationMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		out.Add(typeErr.Field, typeMessage(typeErr.Type))
		return out
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		out.Add(NonFieldErrors, fmt.Sprintf("JSON parse error at offset %d.", syntaxErr.Offset))
		return out
	}

	out.Add(NonFieldErrors, err.Error())
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Kind() == reflect.String {
			return "This field may not be blank."
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return fmt.Sprintf("Expected a value of type %s.", t.Kind())
	}
}
