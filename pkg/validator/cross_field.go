package validator

import "fmt"

// CrossFieldCheck validates a rule that spans several fields and records any
// violation on the report with Reject or RejectValue. A returned error is a
// configuration error and aborts the call.
type CrossFieldCheck func(target Target, rule Rule, report *Report) error

// CrossField declares an object-level rule dispatched to the check registered
// under name in the target's Shape.
func CrossField(name string, profiles ...Profile) Rule {
	r := newRule("", KindCrossField, profiles)
	r.Name = name
	return r
}

// CheckFor adapts a check written against a concrete target type.
func CheckFor[T Target](fn func(target T, rule Rule, report *Report)) CrossFieldCheck {
	return func(target Target, rule Rule, report *Report) error {
		t, ok := target.(T)
		if !ok {
			var want T
			return fmt.Errorf("%w: %s wants %T, got %T", ErrTargetMismatch, rule.Name, want, target)
		}
		fn(t, rule, report)
		return nil
	}
}
