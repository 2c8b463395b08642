package pricing

import "github.com/shopspring/decimal"

// Money is a decimal monetary amount. Currency is implied by the pricing table.
type Money = decimal.Decimal

// Bundle describes a "Qty for Price" multi-buy.
type Bundle struct {
	Qty   int
	Price Money
}

// Line describes one distinct item and how many units were scanned.
type Line struct {
	Qty       int
	UnitPrice Money
	Bundle    *Bundle
}

// Summary aggregates computed pricing components.
type Summary struct {
	Subtotal Money
	Discount Money
	Total    Money
}

// Split divides qty into whole bundles and the loose remainder. A nil or
// non-positive bundle leaves everything loose.
func Split(qty int, bundle *Bundle) (bundles, loose int) {
	if qty <= 0 {
		return 0, 0
	}
	if bundle == nil || bundle.Qty <= 0 {
		return 0, qty
	}
	return qty / bundle.Qty, qty % bundle.Qty
}

// Undiscounted is the line amount at full unit price.
func Undiscounted(l Line) Money {
	if l.Qty <= 0 {
		return decimal.Zero
	}
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// LinePrice charges every complete bundle at the bundle price and the remainder at unit price.
func LinePrice(l Line) Money {
	bundles, loose := Split(l.Qty, l.Bundle)
	total := l.UnitPrice.Mul(decimal.NewFromInt(int64(loose)))
	if bundles > 0 {
		total = total.Add(l.Bundle.Price.Mul(decimal.NewFromInt(int64(bundles))))
	}
	return total
}

// Compute calculates basket totals for the provided lines.
func Compute(lines []Line) Summary {
	subtotal := decimal.Zero
	total := decimal.Zero
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		subtotal = subtotal.Add(Undiscounted(l))
		total = total.Add(LinePrice(l))
	}
	return Summary{
		Subtotal: subtotal,
		Discount: subtotal.Sub(total),
		Total:    total,
	}
}
