package catalog

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	columnSeparator = "|"
	noOffer         = "-"
	offerKeyword    = "for"
)

// headerColumns lists the lowercase substrings each header column must contain, in order.
var headerColumns = [...]string{"item", "price", "offer"}

type tableLine struct {
	no   int
	text string
}

// Parse builds a catalog from a pipe-delimited pricing table:
//
//	| Item   | Price for 1 item | Offer     |
//	|--------|------------------|-----------|
//	| Apple  | 30               | 2 for 45  |
//	| Peach  | 60               | -         |
//
// Leading indentation and then exactly one marker character are discarded
// from every line, so "ab| Item | ..." is not a valid header. A closing pipe
// is optional.
//
// Validation is fail-fast and ordered: header, then separator, then each row
// top to bottom. The first violation is returned as a *ParseError.
func Parse(text string) (*Catalog, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, newParseError(0, ErrHeaderMissing)
	}
	if err := parseHeader(lines[0].text); err != nil {
		return nil, newParseError(lines[0].no, err)
	}
	if !isSeparator(lines[1].text) {
		return nil, newParseError(lines[1].no, ErrHeaderMismatch)
	}

	rows := lines[2:]
	cat := &Catalog{
		items: make(map[string]Item, len(rows)),
		order: make([]string, 0, len(rows)),
	}
	for _, line := range rows {
		if strings.TrimSpace(line.text) == "" {
			continue
		}
		item, err := parseRow(line.text)
		if err != nil {
			return nil, newParseError(line.no, err)
		}
		key := item.Key()
		if _, exists := cat.items[key]; exists {
			return nil, newParseError(line.no, ErrDuplicateItem)
		}
		cat.items[key] = item
		cat.order = append(cat.order, key)
	}
	return cat, nil
}

// MustParse is like Parse but panics on error. Useful for tests and fixed tables.
func MustParse(text string) *Catalog {
	cat, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return cat
}

// splitLines drops leading and trailing blank lines but keeps 1-based numbering.
func splitLines(text string) []tableLine {
	raw := strings.Split(text, "\n")
	lines := make([]tableLine, 0, len(raw))
	for i, line := range raw {
		lines = append(lines, tableLine{no: i + 1, text: strings.TrimSuffix(line, "\r")})
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0].text) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1].text) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitColumns skips indentation, discards the single leading marker
// character (normally the opening pipe), then splits the rest on pipes. Only
// the blank field left after a closing pipe is dropped.
func splitColumns(line string) ([]string, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return nil, false
	}
	_, size := utf8.DecodeRuneInString(trimmed)
	fields := strings.Split(trimmed[size:], columnSeparator)
	if n := len(fields); n > 1 && strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	return fields, true
}

func parseHeader(line string) error {
	cols, ok := splitColumns(line)
	if !ok || len(cols) != len(headerColumns) {
		return ErrHeaderMismatch
	}
	for i, want := range headerColumns {
		if !strings.Contains(strings.ToLower(cols[i]), want) {
			return ErrHeaderMismatch
		}
	}
	return nil
}

func isSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "-") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '-', '|', ' ':
		default:
			return false
		}
	}
	return true
}

func parseRow(line string) (Item, error) {
	fields, ok := splitColumns(line)
	if !ok || len(fields) != len(headerColumns) {
		return Item{}, ErrColumnCount
	}
	price, err := parseDecimal(fields[1])
	if err != nil {
		return Item{}, err
	}
	if !price.IsPositive() {
		return Item{}, ErrPriceNotPositive
	}
	offer, err := parseOffer(fields[2])
	if err != nil {
		return Item{}, err
	}
	return Item{
		Name:  strings.TrimSpace(fields[0]),
		Price: price,
		Offer: offer,
	}, nil
}

// parseOffer accepts "-" for no offer or exactly "<qty> for <price>" separated by single spaces.
func parseOffer(field string) (*Offer, error) {
	text := strings.TrimSpace(field)
	if text == noOffer {
		return nil, nil
	}
	tokens := strings.Split(text, " ")
	if len(tokens) != 3 || tokens[1] != offerKeyword {
		return nil, ErrOfferFormat
	}
	qty, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, ErrNumeric
	}
	price, err := parseDecimal(tokens[2])
	if err != nil {
		return nil, err
	}
	if qty <= 0 || !price.IsPositive() {
		return nil, ErrOfferNotPositive
	}
	return &Offer{Quantity: qty, Price: price}, nil
}

func parseDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, ErrNumeric
	}
	return d, nil
}
