package schemas

import (
	"errors"
	"fmt"
	"lms/utils"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field to its message
type FieldErrors map[string]string

// Clear drops the error of one field, as done when the user edits it.
func (e FieldErrors) Clear(field string) {
	delete(e, field)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Result is either the normalised value or the field errors
type Result[T any] struct {
	Value  T
	Errors FieldErrors
}

func (r Result[T]) OK() bool { return len(r.Errors) == 0 }

// Err returns the field errors as an error, or nil
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors
}

type normalizer interface {
	Normalize()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("youtube", func(fl validator.FieldLevel) bool {
		_, ok := utils.ExtractYouTubeID(fl.Field().String())
		return ok
	})

	return v
}

// Validate normalises input and checks its validate tags. Only the first
// failing rule of each field is reported.
func Validate[T any](input T) Result[T] {
	if n, ok := any(&input).(normalizer); ok {
		n.Normalize()
	}

	err := validate.Struct(input)
	if err == nil {
		return Result[T]{Value: input}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result[T]{Value: input, Errors: FieldErrors{"form": err.Error()}}
	}

	fieldErrors := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := fieldErrors[fe.Field()]; seen {
			continue
		}
		fieldErrors[fe.Field()] = message(fe)
	}
	return Result[T]{Value: input, Errors: fieldErrors}
}

func message(fe validator.FieldError) string {
	label := labelOf(fe.Field())
	param := fe.Param()

	switch fe.Tag() {
	case "required", "required_if":
		return label + " is required!"
	case "email":
		return "Invalid email format!"
	case "eqfield":
		return label + " does not match!"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s!", label, strings.ReplaceAll(param, " ", ", "))
	case "youtube":
		return label + " must be a YouTube link or video id!"
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long!", label, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", label, param)
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters long!", label, param)
		case reflect.Slice:
			return fmt.Sprintf("%s must have at least %s entries!", label, param)
		}
		return fmt.Sprintf("%s must be at least %s!", label, param)
	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters long!", label, param)
		case reflect.Slice:
			return fmt.Sprintf("%s can have at most %s entries!", label, param)
		}
		return fmt.Sprintf("%s must be at most %s!", label, param)
	}
	return label + " is invalid!"
}

func labelOf(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return "Value"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
