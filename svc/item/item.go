package item

import "github.com/dmitrymomot/itemservice/pkg/validator"

// ObjectName is the object name items are reported under.
const ObjectName = "item"

// Field names, as they appear in forms and message codes.
const (
	FieldID       = "id"
	FieldItemName = "itemName"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// Item is a catalogue entry. Every field is optional so that absent input
// stays distinguishable from a zero value.
type Item struct {
	ID       *int64  `form:"id" json:"id,omitempty"`
	ItemName *string `form:"itemName" json:"itemName,omitempty"`
	Price    *int    `form:"price" json:"price,omitempty"`
	Quantity *int    `form:"quantity" json:"quantity,omitempty"`
}

// New returns an item with all values set. Use a zero Item for partial input.
func New(name string, price, quantity int) *Item {
	return &Item{ItemName: &name, Price: &price, Quantity: &quantity}
}

func (i *Item) ObjectName() string { return ObjectName }

// Field implements validator.Target. Pointer values are unwrapped by the engine.
func (i *Item) Field(name string) (validator.Field, bool) {
	switch name {
	case FieldID:
		return validator.Field{Name: name, Type: "int64", Value: i.ID}, true
	case FieldItemName:
		return validator.Field{Name: name, Type: "string", Value: i.ItemName}, true
	case FieldPrice:
		return validator.Field{Name: name, Type: "int", Value: i.Price}, true
	case FieldQuantity:
		return validator.Field{Name: name, Type: "int", Value: i.Quantity}, true
	default:
		return validator.Field{}, false
	}
}

// Total returns price × quantity, or false when either is absent.
func (i *Item) Total() (int64, bool) {
	if i.Price == nil || i.Quantity == nil {
		return 0, false
	}
	return int64(*i.Price) * int64(*i.Quantity), true
}
