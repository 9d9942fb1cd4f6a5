package validation

import (
	"fmt"
	"regexp"
	"time"

	errors "github.com/staffdesk/staff-management/internal"
)

// emailPattern is the practical HTML5-style address check: something
// before an @, something after, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidatorFunc func(interface{}) *fieldError

type fieldError struct {
	message string
}

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		switch v := value.(type) {
		case string:
			if v == "" {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		case int64:
			if v == 0 {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		case time.Time:
			if v.IsZero() {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		case *string:
			if v == nil || *v == "" {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		case *float64:
			if v == nil {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		case *int64:
			if v == nil || *v == 0 {
				return &fieldError{message: fmt.Sprintf("%s is required", fv.FieldName)}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		if v, ok := value.(string); ok && v != "" {
			if !emailPattern.MatchString(v) {
				return &fieldError{message: fmt.Sprintf("%s must be a valid email address", fv.FieldName)}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) NonNegative() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		switch v := value.(type) {
		case float64:
			if v < 0 {
				return &fieldError{message: fmt.Sprintf("%s must be non-negative", fv.FieldName)}
			}
		case *float64:
			if v != nil && *v < 0 {
				return &fieldError{message: fmt.Sprintf("%s must be non-negative", fv.FieldName)}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Positive() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		switch v := value.(type) {
		case int64:
			if v < 0 {
				return &fieldError{message: fmt.Sprintf("%s must be positive", fv.FieldName)}
			}
		case *int64:
			if v != nil && *v < 0 {
				return &fieldError{message: fmt.Sprintf("%s must be positive", fv.FieldName)}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				return &fieldError{message: fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)}
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *fieldError {
		if msg := validator(value); msg != "" {
			return &fieldError{message: msg}
		}
		return nil
	})
	return fv
}

// Validate runs every rule and collects messages per field. A nil
// return means the payload passed.
func (v *ValidationBuilder) Validate() *errors.AppError {
	fieldErrors := make(errors.FieldErrors)

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				fieldErrors.Add(field.FieldName, err.message)
			}
		}
	}

	if len(fieldErrors) > 0 {
		return errors.NewValidationError(fieldErrors)
	}

	return nil
}
