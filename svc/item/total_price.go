package item

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/itemservice/pkg/validator"
)

// DefaultTotalPriceFloor is the smallest accepted price × quantity.
const DefaultTotalPriceFloor int64 = 10_000

// FormatAmount renders n with thousands separators, e.g. 10000 → "10,000".
func FormatAmount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// TotalPriceCheck rejects items whose total is below floor. Items with a
// missing price or quantity are skipped; field rules report those.
// The object error carries the formatted floor and the computed total.
func TotalPriceCheck(floor int64) validator.CrossFieldCheck {
	display := FormatAmount(floor)
	return validator.CheckFor(func(it *Item, rule validator.Rule, report *validator.Report) {
		total, ok := it.Total()
		if !ok || total >= floor {
			return
		}
		report.Reject(rule.Name, display, total)
	})
}
