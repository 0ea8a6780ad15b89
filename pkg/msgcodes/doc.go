// Package msgcodes expands a short error code into an ordered chain of message
// codes, from the most specific to the most generic.
//
// A message table only needs entries for the generic codes, yet callers can
// override the text per object, per field or per field type by adding a more
// specific key. Lookups walk the chain in order and use the first hit; the last
// entry is always the bare code itself.
//
// # Usage
//
//	r := msgcodes.New()
//
//	r.ObjectCodes("required", "item")
//	// [required.item required]
//
//	r.FieldCodes("required", "item", "itemName", "string")
//	// [required.item.itemName required.itemName required.string required]
//
// # Formats
//
// FormatPrefix (the default) places the code first. FormatPostfix places it
// last, producing "item.itemName.required" and so on. A prefix set with
// WithPrefix is prepended to every generated code.
//
// A Resolver has no mutable state after construction and is safe for
// concurrent use.
package msgcodes
