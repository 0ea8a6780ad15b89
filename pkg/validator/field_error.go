package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Resolvable is a recorded violation that can be turned into text by walking
// its message codes in order.
type Resolvable interface {
	error
	MessageCodes() []string
	MessageArgs() []any
	// Code is the bare code, the last entry of MessageCodes.
	Code() string
}

// FieldError is a violation attributed to one field.
//
// For binding failures RejectedValue holds the raw input exactly as
// submitted. For rule violations it holds the typed value that was checked.
type FieldError struct {
	ObjectName     string
	Field          string
	RejectedValue  any
	BindingFailure bool
	Codes          []string
	Arguments      []any
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field error in object '%s' on field '%s': rejected value [%v]; codes [%s]; arguments %v",
		e.ObjectName, e.Field, e.RejectedValue, strings.Join(e.Codes, ","), e.Arguments)
}

func (e FieldError) MessageCodes() []string { return e.Codes }
func (e FieldError) MessageArgs() []any     { return e.Arguments }

// Code returns the bare code, the last entry of the chain.
func (e FieldError) Code() string {
	return lastCode(e.Codes)
}

// ObjectError is a violation of the object as a whole. It never has a
// rejected value and is never a binding failure.
type ObjectError struct {
	ObjectName string
	Codes      []string
	Arguments  []any
}

func (e ObjectError) Error() string {
	return fmt.Sprintf("error in object '%s': codes [%s]; arguments %v",
		e.ObjectName, strings.Join(e.Codes, ","), e.Arguments)
}

func (e ObjectError) MessageCodes() []string { return e.Codes }
func (e ObjectError) MessageArgs() []any     { return e.Arguments }

// Code returns the bare code, the last entry of the chain.
func (e ObjectError) Code() string {
	return lastCode(e.Codes)
}

func lastCode(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return codes[len(codes)-1]
}

// Errors is the error form of a failed report, in evaluation order.
type Errors []Resolvable

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		switch e := err.(type) {
		case FieldError:
			parts = append(parts, fmt.Sprintf("%s.%s: %s", e.ObjectName, e.Field, e.Code()))
		case ObjectError:
			parts = append(parts, fmt.Sprintf("%s: %s", e.ObjectName, e.Code()))
		default:
			parts = append(parts, err.Error())
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any field error exists for field.
func (ve Errors) Has(field string) bool {
	for _, err := range ve {
		if fe, ok := err.(FieldError); ok && fe.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct fields with errors, in first-seen order.
func (ve Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		fe, ok := err.(FieldError)
		if !ok || seen[fe.Field] {
			continue
		}
		seen[fe.Field] = true
		fields = append(fields, fe.Field)
	}
	return fields
}

// ExtractErrors extracts Errors from err.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var ve Errors
	if errors.As(err, &ve) {
		return ve
	}

	return nil
}

// IsValidationError reports whether err carries recorded violations.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var ve Errors
	return errors.As(err, &ve)
}
