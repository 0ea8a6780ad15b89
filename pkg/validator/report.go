package validator

import (
	"slices"

	"github.com/dmitrymomot/itemservice/pkg/msgcodes"
)

// Report accumulates the violations found for one target during one call.
//
// Errors keep insertion order, which is evaluation order. A Report is owned by
// the call that created it and must not be shared between goroutines.
type Report struct {
	objectName string
	target     Target
	resolver   *msgcodes.Resolver
	errs       []Resolvable
}

// NewReport creates an empty report for target. A nil resolver falls back to
// msgcodes.New().
func NewReport(target Target, resolver *msgcodes.Resolver) *Report {
	if resolver == nil {
		resolver = msgcodes.New()
	}
	r := &Report{target: target, resolver: resolver}
	if target != nil {
		r.objectName = target.ObjectName()
	}
	return r
}

// ObjectName returns the target's object name.
func (r *Report) ObjectName() string { return r.objectName }

// Target returns the validated object.
func (r *Report) Target() Target { return r.target }

// AddFieldError appends a field error with the given codes.
func (r *Report) AddFieldError(field string, rejectedValue any, bindingFailure bool, codes []string, args []any) {
	r.errs = append(r.errs, FieldError{
		ObjectName:     r.objectName,
		Field:          field,
		RejectedValue:  rejectedValue,
		BindingFailure: bindingFailure,
		Codes:          slices.Clone(codes),
		Arguments:      slices.Clone(args),
	})
}

// AddObjectError appends an object error with the given codes.
func (r *Report) AddObjectError(codes []string, args []any) {
	r.errs = append(r.errs, ObjectError{
		ObjectName: r.objectName,
		Codes:      slices.Clone(codes),
		Arguments:  slices.Clone(args),
	})
}

// Reject records an object error, expanding code into its object code chain.
func (r *Report) Reject(code string, args ...any) {
	r.AddObjectError(r.resolver.ObjectCodes(code, r.objectName), args)
}

// RejectValue records a rule violation on field. The rejected value is the
// field's current value on the target and the code chain uses the field's
// declared type. Referencing an undeclared field is a configuration error.
func (r *Report) RejectValue(field, code string, args ...any) error {
	f, err := r.field(field)
	if err != nil {
		return err
	}
	r.AddFieldError(field, f.Value, false, r.resolver.FieldCodes(code, r.objectName, field, f.Type), args)
	return nil
}

// RejectBinding records that raw input for field could not be converted to
// the field's type. The raw value is kept as submitted.
func (r *Report) RejectBinding(field string, rawValue any) error {
	f, err := r.field(field)
	if err != nil {
		return err
	}
	r.AddFieldError(field, rawValue, true, r.resolver.FieldCodes(CodeTypeMismatch, r.objectName, field, f.Type), []any{field})
	return nil
}

// HasErrors reports whether any field or object error was recorded.
func (r *Report) HasErrors() bool { return len(r.errs) > 0 }

// ErrorCount returns the number of recorded errors.
func (r *Report) ErrorCount() int { return len(r.errs) }

// Errors returns all errors in insertion order.
func (r *Report) Errors() []Resolvable { return slices.Clone(r.errs) }

// FieldErrors returns the field errors in insertion order.
func (r *Report) FieldErrors() []FieldError {
	var out []FieldError
	for _, e := range r.errs {
		if fe, ok := e.(FieldError); ok {
			out = append(out, fe)
		}
	}
	return out
}

// ObjectErrors returns the object errors in insertion order.
func (r *Report) ObjectErrors() []ObjectError {
	var out []ObjectError
	for _, e := range r.errs {
		if oe, ok := e.(ObjectError); ok {
			out = append(out, oe)
		}
	}
	return out
}

// FieldError returns the first error recorded for field.
func (r *Report) FieldError(field string) (FieldError, bool) {
	for _, e := range r.errs {
		if fe, ok := e.(FieldError); ok && fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}

// FieldErrorsFor returns every error recorded for field.
func (r *Report) FieldErrorsFor(field string) []FieldError {
	var out []FieldError
	for _, e := range r.errs {
		if fe, ok := e.(FieldError); ok && fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// HasFieldErrors reports whether field has at least one error.
func (r *Report) HasFieldErrors(field string) bool {
	_, ok := r.FieldError(field)
	return ok
}

// FieldValue returns the value to redisplay for field: the rejected value of
// its first error when one exists, the target's current value otherwise.
func (r *Report) FieldValue(field string) any {
	if fe, ok := r.FieldError(field); ok {
		return fe.RejectedValue
	}
	if r.target == nil {
		return nil
	}
	f, ok := lookupField(r.target, field)
	if !ok {
		return nil
	}
	return f.Value
}

// Err returns nil when the report is clean and an Errors value otherwise.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return Errors(slices.Clone(r.errs))
}

func (r *Report) hasBindingFailure(field string) bool {
	for _, fe := range r.FieldErrorsFor(field) {
		if fe.BindingFailure {
			return true
		}
	}
	return false
}

func (r *Report) field(name string) (Field, error) {
	if r.target == nil {
		return Field{}, configError(ErrNilTarget, "field %s", name)
	}
	f, ok := lookupField(r.target, name)
	if !ok {
		return Field{}, configError(ErrUnknownField, "%s.%s", r.objectName, name)
	}
	return f, nil
}
