package validator

import (
	"fmt"
	"strings"
)

// NotBlank requires a string field to contain at least one non-whitespace character.
func NotBlank(field string, profiles ...Profile) Rule {
	return newRule(field, KindNotBlank, profiles)
}

func isBlank(value any) (bool, error) {
	if value == nil {
		return true, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: NotBlank on %T", ErrUnsupportedValue, value)
	}
	return strings.TrimSpace(s) == "", nil
}
