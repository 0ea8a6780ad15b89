package item

import "github.com/dmitrymomot/itemservice/pkg/validator"

// Validation profiles for items.
const (
	SaveProfile   validator.Profile = "save"
	UpdateProfile validator.Profile = "update"
)

// Price bounds and the largest quantity accepted on save.
const (
	MinPrice    = 1_000
	MaxPrice    = 1_000_000
	MaxQuantity = 9_999
)

// TotalPriceMin is the object-level rule comparing price × quantity to a floor.
const TotalPriceMin = "totalPriceMin"

// Catalog returns the item rules in evaluation order.
func Catalog() *validator.Catalog {
	return validator.NewCatalog(
		validator.NotNull(FieldID, UpdateProfile),
		validator.NotBlank(FieldItemName, SaveProfile, UpdateProfile),
		validator.NotNull(FieldPrice, SaveProfile, UpdateProfile),
		validator.Range(FieldPrice, MinPrice, MaxPrice, SaveProfile, UpdateProfile),
		validator.NotNull(FieldQuantity, SaveProfile, UpdateProfile),
		validator.Max(FieldQuantity, MaxQuantity, SaveProfile),
		validator.CrossField(TotalPriceMin),
	)
}
