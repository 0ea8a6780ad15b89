package validator

import (
	"fmt"
	"slices"
)

// Message codes emitted by the built-in rules.
const (
	CodeRequired     = "required"
	CodeRange        = "range"
	CodeMax          = "max"
	CodeTypeMismatch = "typeMismatch"
)

// Profile selects which rules of a catalog run for a validation call.
type Profile string

// Kind identifies the constraint a Rule enforces.
type Kind uint8

const (
	KindNotBlank Kind = iota + 1
	KindNotNull
	KindRange
	KindMax
	KindCrossField
)

func (k Kind) String() string {
	switch k {
	case KindNotBlank:
		return "NotBlank"
	case KindNotNull:
		return "NotNull"
	case KindRange:
		return "Range"
	case KindMax:
		return "Max"
	case KindCrossField:
		return "CrossField"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rule is a single declared constraint.
//
// Field rules name the field they check. Cross-field rules leave Field empty
// and carry the name of the registered check in Name. A rule without profiles
// runs for every profile.
type Rule struct {
	Field    string
	Kind     Kind
	Name     string
	Profiles []Profile
	Params   []any
}

// AppliesTo reports whether the rule runs under profile p.
func (r Rule) AppliesTo(p Profile) bool {
	if len(r.Profiles) == 0 {
		return true
	}
	return slices.Contains(r.Profiles, p)
}

// IsCrossField reports whether the rule spans more than one field.
func (r Rule) IsCrossField() bool {
	return r.Kind == KindCrossField
}

// Code returns the base message code a violation of the rule is reported with.
func (r Rule) Code() string {
	switch r.Kind {
	case KindNotBlank, KindNotNull:
		return CodeRequired
	case KindRange:
		return CodeRange
	case KindMax:
		return CodeMax
	default:
		return r.Name
	}
}

func (r Rule) String() string {
	if r.IsCrossField() {
		return fmt.Sprintf("%s(%s)", r.Kind, r.Name)
	}
	if len(r.Params) == 0 {
		return fmt.Sprintf("%s %s", r.Field, r.Kind)
	}
	return fmt.Sprintf("%s %s%v", r.Field, r.Kind, r.Params)
}

// evaluate runs a field rule against value. It returns whether the rule
// failed and the message arguments for the violation.
func (r Rule) evaluate(value any) (failed bool, args []any, err error) {
	switch r.Kind {
	case KindNotBlank:
		failed, err = isBlank(value)
	case KindNotNull:
		failed = value == nil
	case KindRange:
		failed, err = outOfRange(value, r.Params)
	case KindMax:
		failed, err = overMax(value, r.Params)
	default:
		return false, nil, fmt.Errorf("%w: %s is not a field rule", ErrUnsupportedValue, r.Kind)
	}
	if err != nil || !failed {
		return false, nil, err
	}
	return true, slices.Clone(r.Params), nil
}

func newRule(field string, kind Kind, profiles []Profile, params ...any) Rule {
	return Rule{
		Field:    field,
		Kind:     kind,
		Profiles: slices.Clone(profiles),
		Params:   params,
	}
}
