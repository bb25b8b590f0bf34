// Package validation checks request schemas against the rules declared in their
// `validate` struct tags and turns failures into per-field errors the client can read.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is returned when one or more fields fail validation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds an Error for a single field.
func NewError(field, rule, param string) *Error {
	return &Error{Fields: []FieldError{{
		Field:   field,
		Rule:    rule,
		Param:   param,
		Message: message(rule, param, reflect.String),
	}}}
}

// Struct validates s. It returns nil, an *Error, or the validator's own error
// for values it cannot inspect (e.g. a nil pointer).
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}
	return out
}

// Var validates a single value under the given field name.
func Var(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire name, whichever binding tag declares it.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form", "query"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return "-"
			}
			if name != "" {
				return name
			}
		}
		return ""
	})
	return v
}

// fieldPath drops the root type and embedded struct names from a namespace,
// e.g. "PersonUpdate.person.PersonBase.age" becomes "person.age".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return FieldPath(ns)
}

// FieldPath drops embedded struct names from a dotted path of wire names,
// e.g. "person.PersonBase.age" becomes "person.age".
func FieldPath(path string) string {
	segs := strings.Split(path, ".")
	out := segs[:0]
	for _, s := range segs {
		if s != "" && unicode.IsUpper([]rune(s)[0]) {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ".")
}

func message(tag, param string, kind reflect.Kind) string {
	switch tag {
	case "required":
		return "field required"
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("ensure this value has at least %s characters", param)
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", param)
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("ensure this value has at most %s characters", param)
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", param)
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", param)
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("value is not a valid enumeration member; permitted: %s", strings.ReplaceAll(param, " ", ", "))
	case "email":
		return "value is not a valid email address"
	case "integer":
		return "value is not a valid integer"
	case "json":
		return "value is not valid JSON"
	case "form":
		return "value is not a valid form body"
	default:
		return fmt.Sprintf("failed on the %q rule", tag)
	}
}
