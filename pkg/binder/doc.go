// Package binder converts raw request input into typed targets ahead of
// validation.
//
// Binding is the step before the validation engine runs. Form binding is
// forgiving: a value that cannot be converted to its field's type is recorded
// on the validator.Report as a binding failure, with the raw input kept for
// redisplay, and the remaining fields still bind. JSON binding is strict: a
// body that cannot be decoded means there is no target to validate.
//
// # Basic Usage
//
//	type Item struct {
//	    ItemName *string `form:"itemName" json:"itemName"`
//	    Price    *int    `form:"price" json:"price"`
//	    Quantity *int    `form:"quantity" json:"quantity"`
//	}
//
//	it := &Item{}
//	report := engine.NewReport(it)
//	if err := binder.Form(values, it, report); err != nil {
//	    return err
//	}
//	if err := engine.ValidateReport(report, profile); err != nil {
//	    return err
//	}
//
// # Supported Types
//
//   - Basic types: string, int*, uint*, float32, float64, bool
//   - Slices of basic types for multi-value fields (comma-separated too)
//   - Pointers for optional fields; empty input leaves non-string pointers nil
//
// # Error Handling
//
//   - ErrInvalidTarget: target is not a non-nil pointer to struct
//   - ErrNilReport: Form was called without a report
//   - ErrUnsupportedType: a tagged field has a type the binder cannot set
//   - ErrFailedToParseJSON: the JSON body could not be decoded
//
// Conversion failures in Form are not errors; they are report entries.
package binder
