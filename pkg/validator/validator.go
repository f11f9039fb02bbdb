package validator

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

var timeType = reflect.TypeOf(time.Time{})

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator registers the `notfuture` tag, which accepts any field
// convertible to time.Time that does not lie after today.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("notfuture", notFuture)
	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "notfuture":
				errors[field] = field + " must be a date (YYYY-MM-DD) not in the future"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func notFuture(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.Type().ConvertibleTo(timeType) {
		return false
	}
	t := field.Convert(timeType).Interface().(time.Time)
	return !t.After(time.Now())
}
