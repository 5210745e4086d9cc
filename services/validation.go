package services

import (
	"fmt"
	"realtime-relay/domain"
	"realtime-relay/errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Ids are validated on their string form so "required" rejects absent or empty ids.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if id, ok := field.Interface().(domain.ID); ok {
			return id.String()
		}
		return nil
	}, domain.ID{})
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldSeparator joins the messages of a field that failed several constraints.
const FieldSeparator = "\n"

// ValidationError reports every rejected field of a request, keyed by its JSON path.
// It matches ErrInvalidRequest with errors.Is.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, field := range e.order {
		parts = append(parts, strings.ReplaceAll(e.Fields[field], FieldSeparator, ", "))
	}
	return fmt.Sprintf("%s: %s", errors.ErrInvalidRequest, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrInvalidRequest
}

func (e *ValidationError) add(field, message string) {
	if previous, ok := e.Fields[field]; ok {
		e.Fields[field] = previous + FieldSeparator + message
		return
	}
	e.Fields[field] = message
	e.order = append(e.order, field)
}

// Validate checks a request struct. Rejected fields come back as a *ValidationError.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return describe(validationErrors)
}

func describe(validationErrors validator.ValidationErrors) *ValidationError {
	res := &ValidationError{Fields: make(map[string]string, len(validationErrors))}
	for _, fe := range validationErrors {
		field := fieldPath(fe)
		switch fe.Tag() {
		case "required":
			res.add(field, fmt.Sprintf("%s is required", field))
		case "oneof":
			res.add(field, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			res.add(field, fmt.Sprintf("%s failed on %s=%s", field, fe.Tag(), fe.Param()))
		}
	}
	return res
}

// fieldPath drops the root struct name: "EmitRequest.data" becomes "data".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
