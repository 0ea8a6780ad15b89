// Package validator is a profile-aware validation engine that records
// violations in a report instead of failing the call.
//
// A Catalog declares the rules for one target shape. Each Rule is either a
// field rule (NotBlank, NotNull, Range, Max) or a cross-field rule
// (CrossField) dispatched by name to a CrossFieldCheck registered on the
// Shape. Rules may be tagged with one or more Profiles; untagged rules run
// for every profile.
//
// The Engine runs the field rules of the selected profile in declaration
// order, then the cross-field rules, and appends one error per failing rule
// to a Report. Every error carries a chain of message codes produced by
// msgcodes.Resolver, most specific first, so a message table can stay sparse.
//
// # Architecture
//
//   - Catalog      – immutable, ordered rules; RulesFor selects by profile
//   - Engine       – shape registry plus the field and cross-field passes
//   - Report       – ordered FieldError/ObjectError accumulator for one call
//   - ScriptCheck  – cross-field check compiled from an expr expression
//
// The Engine and its catalogs are read-only after construction and can be
// shared between goroutines. A Report belongs to a single call.
//
// # Usage
//
//	engine, err := validator.NewEngine(
//	    validator.WithShape(validator.Shape{
//	        Name: "item",
//	        Catalog: validator.NewCatalog(
//	            validator.NotBlank("itemName", SaveProfile),
//	            validator.Range("price", 1000, 1000000, SaveProfile),
//	            validator.CrossField("totalPriceMin"),
//	        ),
//	        Checks: map[string]validator.CrossFieldCheck{"totalPriceMin": totalPriceMin},
//	    }),
//	)
//	if err != nil {
//	    // shape wiring is broken
//	}
//
//	report, err := engine.Validate(item, SaveProfile)
//	if err != nil {
//	    // configuration error, see IsConfigurationError
//	}
//	if report.HasErrors() {
//	    // redisplay with report.FieldValue(field) and resolve report.Errors()
//	}
//
// # Binding failures
//
// A binding collaborator converts raw input before validation. When a value
// cannot be converted it calls Report.RejectBinding on a report obtained from
// Engine.NewReport and then runs Engine.ValidateReport, so binding and rule
// errors surface together. Field rules skip fields that failed binding.
//
// # Error Handling
//
// Violations are data. Errors returned by this package always wrap
// ErrConfiguration and mean the rules reference something the target does
// not declare, or a rule cannot be applied to a field's type. Report.Err
// converts a failed report into an Errors value for callers that prefer the
// error interface; ExtractErrors and IsValidationError unwrap it again.
package validator
