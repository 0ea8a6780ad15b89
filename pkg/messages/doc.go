// Package messages resolves validation message codes against a sparse table.
//
// A Table holds code → template entries loaded from YAML or JSON. Callers pass
// the ordered code chain of a violation (see msgcodes) and the table returns
// the first template that exists, so generic entries such as "required" cover
// every field while "required.item.itemName" can override one field.
//
// # Usage
//
//	table, err := messages.LoadFile(ctx, "errors.yml")
//	if err != nil {
//	    return err
//	}
//	for _, e := range report.Errors() {
//	    text, err := table.Resolve(e)
//	    ...
//	}
//
// # File Format
//
// Keys are flat codes; nested maps are joined with dots:
//
//	required: field is required
//	range: must be between {0} and {1}
//	typeMismatch:
//	  int: must be a number
//
// Positional placeholders {0}, {1}, … are replaced by the violation's
// arguments using fmt.Sprint. Locale-aware rendering is not provided.
//
// # Error Handling
//
// Loading errors join a package sentinel with the underlying cause, e.g.
// ErrFailedToParseYAML or ErrFailedToReadFile. Message returns
// ErrMessageNotFound when no code of the chain has an entry.
package messages
