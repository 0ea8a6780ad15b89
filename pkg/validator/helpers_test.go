package validator_test

import (
	"github.com/dmitrymomot/itemservice/pkg/validator"
)

const (
	create validator.Profile = "create"
	edit   validator.Profile = "edit"
)

// product is a small target used across the package tests.
type product struct {
	Name     *string
	Price    *int
	Quantity *int
	Count    int
}

func (p *product) ObjectName() string { return "product" }

func (p *product) Field(name string) (validator.Field, bool) {
	switch name {
	case "name":
		return validator.Field{Name: name, Type: "string", Value: p.Name}, true
	case "price":
		return validator.Field{Name: name, Type: "int", Value: p.Price}, true
	case "quantity":
		return validator.Field{Name: name, Type: "int", Value: p.Quantity}, true
	case "count":
		return validator.Field{Name: name, Type: "int", Value: p.Count}, true
	}
	return validator.Field{}, false
}

// other is a second shape used to test check dispatch.
type other struct{}

func (other) ObjectName() string                     { return "product" }
func (other) Field(string) (validator.Field, bool) { return validator.Field{}, false }

func ptr[T any](v T) *T { return &v }

func newProduct(name string, price, quantity int) *product {
	return &product{Name: ptr(name), Price: ptr(price), Quantity: ptr(quantity)}
}

func mustEngine(t interface{ Fatalf(string, ...any) }, shape validator.Shape) *validator.Engine {
	e, err := validator.NewEngine(validator.WithShape(shape))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func codes(errs []validator.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field+":"+e.Code())
	}
	return out
}
