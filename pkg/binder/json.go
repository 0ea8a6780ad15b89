package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxJSONSize is the default maximum size for JSON bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON decodes a JSON body into v in strict mode.
//
// Unlike Form, JSON binding is all or nothing: when the body cannot be
// decoded the target cannot be constructed, ErrFailedToParseJSON is returned
// and the validation engine must not be invoked.
func JSON(r io.Reader, v any) error {
	if _, err := structValue(v); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(r, DefaultMaxJSONSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return fmt.Errorf("%w: body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields() // Always use strict mode

	if err := decoder.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: field %s: expected %s, got %s", ErrFailedToParseJSON, typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	return nil
}
