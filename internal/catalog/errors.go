package catalog

import (
	"errors"
	"fmt"

	"github.com/noah-isme/toko-pricing/internal/common"
)

var (
	// ErrHeaderMissing is returned when the table has no header and separator line.
	ErrHeaderMissing = errors.New("missing or malformed header")
	// ErrHeaderMismatch indicates the header or separator does not have the item/price/offer shape.
	ErrHeaderMismatch = errors.New("header format mismatch")
	// ErrColumnCount is returned when a row does not have exactly three columns.
	ErrColumnCount = errors.New("column count mismatch")
	// ErrNumeric indicates a price, offer quantity or offer price is not a number.
	ErrNumeric = errors.New("cannot parse numeric value")
	// ErrPriceNotPositive is returned for a zero or negative unit price.
	ErrPriceNotPositive = errors.New("price must be positive")
	// ErrOfferFormat indicates the offer is neither "-" nor "<qty> for <price>".
	ErrOfferFormat = errors.New("offer not formatted properly")
	// ErrOfferNotPositive is returned for a zero or negative offer quantity or price.
	ErrOfferNotPositive = errors.New("offer price and quantity must be positive")
	// ErrDuplicateItem indicates two rows share a normalized item name.
	ErrDuplicateItem = errors.New("duplicate items in table")
)

var reasonCodes = map[error]string{
	ErrHeaderMissing:    "header_missing",
	ErrHeaderMismatch:   "header_mismatch",
	ErrColumnCount:      "column_count",
	ErrNumeric:          "numeric",
	ErrPriceNotPositive: "price_not_positive",
	ErrOfferFormat:      "offer_format",
	ErrOfferNotPositive: "offer_not_positive",
	ErrDuplicateItem:    "duplicate_item",
}

// ParseError describes why a pricing table was rejected.
type ParseError struct {
	// Line is the 1-based line number of the offending line.
	Line   int
	Reason error
}

func newParseError(line int, reason error) *ParseError {
	return &ParseError{Line: line, Reason: reason}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Reason)
	}
	return e.Reason.Error()
}

// Unwrap exposes the reason sentinel to errors.Is.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Reason
}

// Code returns a stable snake_case identifier for the reason, suitable for metric labels.
func (e *ParseError) Code() string {
	if e == nil {
		return ""
	}
	if code, ok := reasonCodes[e.Reason]; ok {
		return code
	}
	return "unknown"
}

// Kind implements common.Kinded.
func (e *ParseError) Kind() common.Kind { return common.KindParse }
