package binder

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

// Form binds submitted form values into the struct pointed to by v.
//
// Parameter names come from `form` tags and must match the field names the
// target declares to the validator; untagged fields use the lowercased Go
// name and `form:"-"` skips a field. Pointer fields are optional: a missing
// or empty value leaves a non-string pointer nil.
//
// A value that cannot be converted does not stop binding. The field is left
// unset and report.RejectBinding records the raw input, so the engine can
// still validate the fields that did bind and all errors surface together.
//
// Example:
//
//	type Item struct {
//		ItemName *string `form:"itemName"`
//		Price    *int    `form:"price"`
//		Quantity *int    `form:"quantity"`
//	}
//
//	it := &Item{}
//	report := engine.NewReport(it)
//	if err := binder.Form(r.PostForm, it, report); err != nil {
//		// target or report misuse
//	}
//	err := engine.ValidateReport(report, SaveProfile)
//
// The returned error is non-nil only for structural misuse: a target that is
// not a pointer to struct, a nil report, a field type the binder cannot
// handle, or a tagged field the report's target does not declare.
func Form(values url.Values, v any, report *validator.Report) error {
	if report == nil {
		return ErrNilReport
	}

	rv, err := structValue(v)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		// Skip unexported fields
		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, "form")
		if skip {
			continue
		}

		raw, exists := values[paramName]
		if !exists || len(raw) == 0 {
			continue
		}

		converted, err := convert(fieldType.Type, raw)
		if err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return fmt.Errorf("field %s: %w", fieldType.Name, err)
			}
			if err := report.RejectBinding(paramName, rawValue(raw)); err != nil {
				return err
			}
			continue
		}
		field.Set(converted)
	}

	return nil
}

// rawValue keeps single values as a plain string for redisplay.
func rawValue(raw []string) any {
	if len(raw) == 1 {
		return raw[0]
	}
	out := make([]string, len(raw))
	copy(out, raw)
	return out
}
