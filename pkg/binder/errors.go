package binder

import "errors"

// Common binding errors
var (
	ErrInvalidTarget     = errors.New("binding target must be a non-nil pointer to struct")
	ErrNilReport         = errors.New("binding report is nil")
	ErrFailedToParseJSON = errors.New("failed to parse JSON body")
	ErrUnsupportedType   = errors.New("unsupported field type")
)
