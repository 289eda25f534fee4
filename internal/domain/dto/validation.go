package dto

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// RegisterValidations adds the tags used by the request DTOs to v and makes
// field errors report JSON names.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	v.RegisterAlias("phone", "number,len=10")
	return nil
}

// FromBindingError converts validator field errors into ValidationErrors.
// It returns nil when err is not a validation failure.
func FromBindingError(err error) ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{Field: fe.Field(), Message: bindingMessage(fe)})
	}
	return errs
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "phone":
		return "must be a 10 digit number"
	case "gte":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Sort orders the errors by field name.
func (errs ValidationErrors) Sort() {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
}
