package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	timex "github.com/ferdiebergado/memoboard/internal/pkg/time"
	"github.com/go-playground/validator/v10"
)

// TagDate validates a dd/mm/yyyy calendar date.
const TagDate = "ddmmyyyy"

type GoPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*GoPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// register function to get tag name from json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(TagDate, isDate); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagDate, err))
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return nil
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func isDate(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	// Empty means the server picks the date.
	if field.String() == "" {
		return true
	}
	return timex.IsDate(field.String())
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case TagDate:
		return fmt.Sprintf("%s must be a date in dd/mm/yyyy format", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
