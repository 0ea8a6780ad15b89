package msgcodes

import "strings"

// Separator joins the parts of a generated code.
const Separator = "."

// Format controls where the error code sits inside a generated code.
type Format int

const (
	// FormatPrefix produces "code.objectName.field".
	FormatPrefix Format = iota
	// FormatPostfix produces "objectName.field.code".
	FormatPostfix
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrefix prepends prefix to every generated code.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) { r.prefix = prefix }
}

// WithFormat selects the code layout. Unknown formats are ignored.
func WithFormat(f Format) Option {
	return func(r *Resolver) {
		switch f {
		case FormatPrefix, FormatPostfix:
			r.format = f
		}
	}
}

// Resolver builds message code chains.
type Resolver struct {
	prefix string
	format Format
}

// New creates a Resolver with the prefix format and no prefix.
func New(opts ...Option) *Resolver {
	r := &Resolver{format: FormatPrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ObjectCodes returns the codes for an object-level error:
//
//	code.objectName
//	code
func (r *Resolver) ObjectCodes(code, objectName string) []string {
	return []string{
		r.postProcess(r.join(code, objectName)),
		r.postProcess(code),
	}
}

// FieldCodes returns the codes for a field-level error:
//
//	code.objectName.field
//	code.field
//	code.fieldType
//	code
//
// The chain always has four entries in exactly this order.
func (r *Resolver) FieldCodes(code, objectName, field, fieldType string) []string {
	return []string{
		r.postProcess(r.join(code, objectName, field)),
		r.postProcess(r.join(code, field)),
		r.postProcess(r.join(code, fieldType)),
		r.postProcess(code),
	}
}

func (r *Resolver) join(code string, parts ...string) string {
	elems := make([]string, 0, len(parts)+1)
	if r.format == FormatPostfix {
		elems = append(elems, parts...)
		elems = append(elems, code)
	} else {
		elems = append(elems, code)
		elems = append(elems, parts...)
	}
	return strings.Join(elems, Separator)
}

func (r *Resolver) postProcess(code string) string {
	return r.prefix + code
}
