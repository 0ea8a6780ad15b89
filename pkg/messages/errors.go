package messages

import "errors"

var (
	// ErrMessageNotFound is returned when no code of a chain has an entry.
	ErrMessageNotFound = errors.New("no message found for codes")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingCancelled  = errors.New("loading message file cancelled")
	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrUnsupportedFormat = errors.New("unsupported message file format")
	ErrInvalidEntry      = errors.New("invalid message entry")
)
