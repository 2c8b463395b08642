package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var headerTitles = [...]string{"Item", "Price for 1 item", "Offer"}

// OfferText renders the offer column: "-" or "<qty> for <price>".
func (it Item) OfferText() string {
	if it.Offer == nil {
		return noOffer
	}
	return fmt.Sprintf("%d %s %s", it.Offer.Quantity, offerKeyword, it.Offer.Price.String())
}

// Row renders the item as a single table row that Parse accepts.
func (it Item) Row() string {
	return formatRow([]string{it.Name, it.Price.String(), it.OfferText()}, nil)
}

// Table renders the catalog back into a pricing table, columns padded to align.
// Parse(c.Table()) yields a catalog equal to c.
func (c *Catalog) Table() string {
	items := c.Items()
	cells := make([][]string, 0, len(items)+1)
	cells = append(cells, headerTitles[:])
	for _, it := range items {
		cells = append(cells, []string{it.Name, it.Price.String(), it.OfferText()})
	}

	widths := make([]int, len(headerTitles))
	for _, row := range cells {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	b.WriteString(formatRow(cells[0], widths))
	b.WriteByte('\n')
	b.WriteString(columnSeparator)
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString(columnSeparator)
	}
	for _, row := range cells[1:] {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths))
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString(columnSeparator)
	for i, cell := range cells {
		b.WriteByte(' ')
		b.WriteString(cell)
		if widths != nil {
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
		b.WriteByte(' ')
		b.WriteString(columnSeparator)
	}
	return b.String()
}
