package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Offer is a "buy Quantity for Price" bulk discount.
type Offer struct {
	Quantity int
	Price    decimal.Decimal
}

// Equal reports whether both offers describe the same bundle.
func (o Offer) Equal(other Offer) bool {
	return o.Quantity == other.Quantity && o.Price.Equal(other.Price)
}

// Item is a priced catalog entry. Offer is nil when the item has no bulk discount.
type Item struct {
	Name  string
	Price decimal.Decimal
	Offer *Offer
}

// Key returns the normalized lookup key of the item.
func (it Item) Key() string {
	return Normalize(it.Name)
}

// Equal compares items by value, treating decimals numerically.
func (it Item) Equal(other Item) bool {
	if it.Name != other.Name || !it.Price.Equal(other.Price) {
		return false
	}
	if it.Offer == nil || other.Offer == nil {
		return it.Offer == nil && other.Offer == nil
	}
	return it.Offer.Equal(*other.Offer)
}

// Catalog is an immutable set of items keyed by normalized name.
type Catalog struct {
	items map[string]Item
	order []string
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Items returns a copy of the catalog items in table order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.items[key].clone())
	}
	return out
}

// Lookup finds an item by name, ignoring case and surrounding whitespace.
func (c *Catalog) Lookup(name string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	it, ok := c.items[Normalize(name)]
	if !ok {
		return Item{}, false
	}
	return it.clone(), true
}

// Normalize returns the lookup key for a scanned or listed item name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// clone keeps callers from mutating the offer shared with the catalog.
func (it Item) clone() Item {
	if it.Offer != nil {
		offer := *it.Offer
		it.Offer = &offer
	}
	return it
}
