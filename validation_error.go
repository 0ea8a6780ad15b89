package itemservice

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ObjectKey is the ValidationError key for errors that concern the whole object.
const ObjectKey = ""

// ValidationError maps field names to user-facing messages. Object-level
// messages are stored under ObjectKey. It's based on url.Values to leverage
// built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface. Fields are listed in sorted order.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		messages := e[field]
		if len(messages) == 0 {
			continue
		}
		name := field
		if name == ObjectKey {
			name = "object"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, messages[0]))
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add appends a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Object returns the object-level messages.
func (e ValidationError) Object() []string {
	return e[ObjectKey]
}

// Has reports whether field has any messages.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
