package item

import (
	"fmt"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

type shapeConfig struct {
	floor int64
	rule  string
}

// ShapeOption configures NewShape.
type ShapeOption func(*shapeConfig)

// WithTotalPriceFloor overrides DefaultTotalPriceFloor.
func WithTotalPriceFloor(floor int64) ShapeOption {
	return func(c *shapeConfig) { c.floor = floor }
}

// WithTotalPriceRule replaces the built-in total check with a boolean
// expression over price and quantity, e.g. "price * quantity >= 25000".
// An empty expression keeps the built-in check.
func WithTotalPriceRule(expression string) ShapeOption {
	return func(c *shapeConfig) { c.rule = expression }
}

// NewShape returns the validator shape for items.
func NewShape(opts ...ShapeOption) (validator.Shape, error) {
	cfg := shapeConfig{floor: DefaultTotalPriceFloor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.floor <= 0 {
		return validator.Shape{}, fmt.Errorf("%w: %d", ErrInvalidFloor, cfg.floor)
	}

	check := TotalPriceCheck(cfg.floor)
	if cfg.rule != "" {
		script, err := validator.ScriptCheck(cfg.rule, FieldPrice, FieldQuantity)
		if err != nil {
			return validator.Shape{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
		}
		check = script
	}

	return validator.Shape{
		Name:    ObjectName,
		Catalog: Catalog(),
		Checks:  map[string]validator.CrossFieldCheck{TotalPriceMin: check},
	}, nil
}
