// Package item is the reference domain for the validation engine: a
// catalogue item with an id, a name, a unit price and a quantity.
//
// Item implements validator.Target. Catalog declares the field rules for the
// SaveProfile and UpdateProfile profiles plus the object-level
// totalPriceMin rule, and NewShape registers the check that enforces it:
//
//	shape, err := item.NewShape(item.WithTotalPriceFloor(cfg.Floor))
//	if err != nil {
//	    return err
//	}
//	engine, err := validator.NewEngine(validator.WithShape(shape))
package item
