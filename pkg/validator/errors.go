package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. Constraint violations are never returned as errors;
// they are recorded in a Report. An error from this package means the engine
// was wired incorrectly and the call could not be completed.
var (
	// ErrConfiguration is joined into every error caused by a rule, shape or
	// target mismatch. Use errors.Is to tell it apart from anything else.
	ErrConfiguration = errors.New("validator: invalid configuration")

	// ErrNilTarget is returned when validation is invoked without a target.
	ErrNilTarget = errors.New("nil target")

	// ErrUnknownShape is returned when no shape is registered for the target's object name.
	ErrUnknownShape = errors.New("no shape registered for object")

	// ErrInvalidShape is returned by NewEngine for incomplete shape definitions.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrUnknownField is returned when a rule references a field the target does not declare.
	ErrUnknownField = errors.New("field not declared by target")

	// ErrUnknownCheck is returned when a cross-field rule has no registered check.
	ErrUnknownCheck = errors.New("cross-field check not registered")

	// ErrUnsupportedValue is returned when a rule cannot be applied to the field's value type.
	ErrUnsupportedValue = errors.New("rule cannot be applied to field value")

	// ErrTargetMismatch is returned when a typed cross-field check receives a different target type.
	ErrTargetMismatch = errors.New("cross-field check received unexpected target type")

	// ErrInvalidExpression is returned when a script check cannot be compiled or evaluated.
	ErrInvalidExpression = errors.New("invalid check expression")
)

// IsConfigurationError reports whether err was caused by engine misconfiguration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func configError(cause error, format string, args ...any) error {
	return errors.Join(ErrConfiguration, fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, args...)))
}
