package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rohanb712/ecotrack/pkg/apperror"
)

const dateLayout = "2006-01-02"

// Validator wraps go-playground/validator with the field rules of the
// actions API and translates violations into per-field message lists.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: non-empty after trimming whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// notfuture: date must not be later than today. Format errors are the
	// datetime rule's job, so an unparseable value passes here.
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return true
		}
		today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
		return !d.After(today)
	})

	return &Validator{validate: v}
}

// ValidateStruct checks every field of s and returns a *apperror.ValidationError
// holding all violations, or nil when s is valid.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	ve := &apperror.ValidationError{}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		ve.Add("non_field_errors", err.Error())
		return ve
	}

	for _, fe := range validationErrors {
		ve.Add(fe.Field(), fieldErrorMessage(fe))
	}
	return ve
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "Action cannot be empty."
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "notfuture":
		return "Date cannot be in the future."
	case "min":
		return "Points must be a positive integer."
	default:
		return "This field is invalid."
	}
}
