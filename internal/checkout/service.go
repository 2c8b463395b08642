package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-pricing/internal/catalog"
	"github.com/noah-isme/toko-pricing/internal/pricing"
)

// Line is the priced result for one distinct item in the basket.
type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	// Bundles is the number of complete offers applied; BundledQty units are covered by them.
	Bundles    int             `json:"bundles"`
	BundledQty int             `json:"bundledQty"`
	LooseQty   int             `json:"looseQty"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Savings    decimal.Decimal `json:"savings"`
	Total      decimal.Decimal `json:"total"`
}

// Receipt is the full breakdown of a checkout.
type Receipt struct {
	Lines    []Line          `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Savings  decimal.Decimal `json:"savings"`
	Total    decimal.Decimal `json:"total"`
}

// Items returns the number of units across all lines.
func (r Receipt) Items() int {
	var n int
	for _, l := range r.Lines {
		n += l.Quantity
	}
	return n
}

type group struct {
	scanned string
	count   int
}

// Checkout totals the basket against the catalog.
func Checkout(cat *catalog.Catalog, basket []string) (decimal.Decimal, error) {
	receipt, err := Price(cat, basket)
	if err != nil {
		return decimal.Zero, err
	}
	return receipt.Total, nil
}

// Price groups the scanned names case- and whitespace-insensitively and
// prices each group, applying the item's offer. Lines follow the order in
// which each item was first scanned. The first unknown name fails the whole
// checkout.
func Price(cat *catalog.Catalog, basket []string) (Receipt, error) {
	groups := make(map[string]*group, len(basket))
	order := make([]string, 0, len(basket))
	for _, scanned := range basket {
		key := catalog.Normalize(scanned)
		if g, ok := groups[key]; ok {
			g.count++
			continue
		}
		groups[key] = &group{scanned: scanned, count: 1}
		order = append(order, key)
	}

	lines := make([]Line, 0, len(order))
	pricingLines := make([]pricing.Line, 0, len(order))
	for _, key := range order {
		g := groups[key]
		item, ok := cat.Lookup(key)
		if !ok {
			return Receipt{}, &CheckoutError{Item: g.scanned}
		}
		pl := toPricingLine(item, g.count)
		pricingLines = append(pricingLines, pl)
		lines = append(lines, newLine(item, pl))
	}

	summary := pricing.Compute(pricingLines)
	return Receipt{
		Lines:    lines,
		Subtotal: summary.Subtotal,
		Savings:  summary.Discount,
		Total:    summary.Total,
	}, nil
}

func toPricingLine(item catalog.Item, qty int) pricing.Line {
	pl := pricing.Line{Qty: qty, UnitPrice: item.Price}
	if item.Offer != nil {
		pl.Bundle = &pricing.Bundle{Qty: item.Offer.Quantity, Price: item.Offer.Price}
	}
	return pl
}

func newLine(item catalog.Item, pl pricing.Line) Line {
	bundles, loose := pricing.Split(pl.Qty, pl.Bundle)
	subtotal := pricing.Undiscounted(pl)
	total := pricing.LinePrice(pl)
	return Line{
		Name:       item.Name,
		Quantity:   pl.Qty,
		UnitPrice:  item.Price,
		Bundles:    bundles,
		BundledQty: pl.Qty - loose,
		LooseQty:   loose,
		Subtotal:   subtotal,
		Savings:    subtotal.Sub(total),
		Total:      total,
	}
}
