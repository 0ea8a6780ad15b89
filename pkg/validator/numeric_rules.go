package validator

import (
	"fmt"
	"math"
)

// Range requires an integer field to be present and within [min, max].
// Violations carry (min, max) as message arguments.
func Range(field string, min, max int64, profiles ...Profile) Rule {
	return newRule(field, KindRange, profiles, min, max)
}

// Max requires an integer field to be present, positive and not above max.
// Violations carry (max) as the message argument.
func Max(field string, max int64, profiles ...Profile) Rule {
	return newRule(field, KindMax, profiles, max)
}

func outOfRange(value any, params []any) (bool, error) {
	if len(params) != 2 {
		return false, fmt.Errorf("%w: Range expects 2 params, got %d", ErrUnsupportedValue, len(params))
	}
	lo, okLo := toInt64(params[0])
	hi, okHi := toInt64(params[1])
	if !okLo || !okHi {
		return false, fmt.Errorf("%w: Range params must be integers", ErrUnsupportedValue)
	}
	if value == nil {
		return true, nil
	}
	n, ok := toInt64(value)
	if !ok {
		return false, fmt.Errorf("%w: Range on %T", ErrUnsupportedValue, value)
	}
	return n < lo || n > hi, nil
}

func overMax(value any, params []any) (bool, error) {
	if len(params) != 1 {
		return false, fmt.Errorf("%w: Max expects 1 param, got %d", ErrUnsupportedValue, len(params))
	}
	limit, ok := toInt64(params[0])
	if !ok {
		return false, fmt.Errorf("%w: Max param must be an integer", ErrUnsupportedValue)
	}
	if value == nil {
		return true, nil
	}
	n, ok := toInt64(value)
	if !ok {
		return false, fmt.Errorf("%w: Max on %T", ErrUnsupportedValue, value)
	}
	// quantity-style fields must be positive as well as bounded
	return n <= 0 || n > limit, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}
