package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

// Table maps message codes to templates. It only needs entries for the codes
// a caller wants to cover; lookups walk a code chain and take the first hit.
// A Table is read-only and safe for concurrent use.
type Table struct {
	entries map[string]string
}

// New creates a table from code → template entries.
func New(entries map[string]string) *Table {
	return &Table{entries: maps.Clone(entries)}
}

// Parse parses content with the parser for format ("yaml", "yml" or "json").
func Parse(ctx context.Context, content, format string) (*Table, error) {
	p := NewParserForFile("messages." + format)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	entries, err := p.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return &Table{entries: entries}, nil
}

// LoadFile reads a message file from disk. The format follows the extension.
func LoadFile(ctx context.Context, path string) (*Table, error) {
	return load(ctx, path, os.ReadFile)
}

// LoadFS reads a message file from fsys, typically an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, path string) (*Table, error) {
	return load(ctx, path, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
}

func load(ctx context.Context, path string, read func(string) ([]byte, error)) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	p := NewParserForFile(path)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := read(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	entries, err := p.Parse(ctx, string(content))
	if err != nil {
		return nil, err
	}
	return &Table{entries: entries}, nil
}

// Merge returns a new table with the entries of t overridden by those of other.
func (t *Table) Merge(other *Table) *Table {
	merged := maps.Clone(t.entries)
	if merged == nil {
		merged = make(map[string]string)
	}
	if other != nil {
		maps.Copy(merged, other.entries)
	}
	return &Table{entries: merged}
}

// Has reports whether code has an entry.
func (t *Table) Has(code string) bool {
	_, ok := t.entries[code]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the template of the first code in codes that has an entry,
// together with that code.
func (t *Table) Lookup(codes []string) (template, code string, ok bool) {
	for _, c := range codes {
		if tmpl, found := t.entries[c]; found {
			return tmpl, c, true
		}
	}
	return "", "", false
}

// Message looks up codes and substitutes positional placeholders {0}, {1}, …
// with args. Placeholders without an argument are kept as they are.
func (t *Table) Message(codes []string, args []any) (string, error) {
	tmpl, _, ok := t.Lookup(codes)
	if !ok {
		return "", fmt.Errorf("%w: [%s]", ErrMessageNotFound, strings.Join(codes, ","))
	}
	return format(tmpl, args), nil
}

// Resolve returns the message for a recorded violation.
func (t *Table) Resolve(r validator.Resolvable) (string, error) {
	return t.Message(r.MessageCodes(), r.MessageArgs())
}

// Regex to find positional parameters in the form {0}
var paramRegex = regexp.MustCompile(`\{(\d+)\}`)

func format(tmpl string, args []any) string {
	if len(args) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		i, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || i >= len(args) {
			return match
		}
		return fmt.Sprint(args[i])
	})
}
