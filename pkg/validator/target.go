package validator

import "reflect"

// Field is a single declared field of a Target.
type Field struct {
	Name string
	// Type is the declared type name used for type-level message codes.
	Type string
	// Value is the current typed value, nil when absent.
	Value any
}

// Target is an object the engine can validate. The engine only reads it.
type Target interface {
	// ObjectName identifies the target's shape, e.g. "item".
	ObjectName() string
	// Field returns the named field, or false if the target does not declare it.
	Field(name string) (Field, bool)
}

// Indirect unwraps a pointer field value for Target implementations that keep
// optional fields as pointers. Nil pointers become an untyped nil.
func Indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func lookupField(target Target, name string) (Field, bool) {
	f, ok := target.Field(name)
	if !ok {
		return Field{}, false
	}
	f.Value = Indirect(f.Value)
	if f.Name == "" {
		f.Name = name
	}
	return f, true
}
