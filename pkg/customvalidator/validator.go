package customvalidator

import (
	"reflect"
	"regexp"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

var (
	yearCodeRe = regexp.MustCompile(`^\d{2}-\d+$`)
	clockRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// RegisterCustomValidations registers the console's struct-tag rules on v.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)

	if err := v.RegisterValidation("year_code", isYearCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("iso_date", isISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("clock", isClockTime); err != nil {
		return err
	}
	return nil
}

// IsYearCode reports whether s looks like "25-3".
func IsYearCode(s string) bool {
	return yearCodeRe.MatchString(s)
}

func isYearCode(fl validator.FieldLevel) bool {
	return IsYearCode(fl.Field().String())
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func isClockTime(fl validator.FieldLevel) bool {
	return clockRe.MatchString(fl.Field().String())
}

// registerNullTypes lets rules see through null.String so omitempty works on it.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})
}
