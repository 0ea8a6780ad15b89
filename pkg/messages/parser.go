package messages

import (
	"context"
	"fmt"
	"strings"
)

// Parser parses the content of a message file into flat code → template
// entries.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]string, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (e.g. both "json" and ".json" are valid)
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := getFileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// flatten turns nested maps into dot-joined codes so that
//
//	typeMismatch:
//	  int: must be a number
//
// and "typeMismatch.int: must be a number" produce the same entry.
func flatten(prefix string, data map[string]any, out map[string]string) error {
	for k, v := range data {
		code := k
		if prefix != "" {
			code = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			out[code] = val
		case map[string]any:
			if err := flatten(code, val, out); err != nil {
				return err
			}
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				converted[fmt.Sprint(mk)] = mv
			}
			if err := flatten(code, converted, out); err != nil {
				return err
			}
		case nil:
			return fmt.Errorf("%w: %s has no value", ErrInvalidEntry, code)
		case []any:
			return fmt.Errorf("%w: %s is a list", ErrInvalidEntry, code)
		default:
			out[code] = fmt.Sprint(val)
		}
	}
	return nil
}
