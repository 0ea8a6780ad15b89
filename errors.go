package itemservice

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid item service config")
	ErrBinding       = errors.New("item binding failed")
)
