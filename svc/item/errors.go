package item

import "errors"

var (
	ErrInvalidFloor = errors.New("total price floor must be positive")
	ErrInvalidRule  = errors.New("invalid total price rule")
)
