package checkout

import (
	"errors"
	"fmt"

	"github.com/noah-isme/toko-pricing/internal/common"
)

// ErrUnknownItem is returned when a scanned name has no catalog entry.
var ErrUnknownItem = errors.New("item does not exist")

// CheckoutError reports the scanned name that could not be priced.
type CheckoutError struct {
	// Item is the name exactly as it was scanned, before normalization.
	Item string
}

// Error implements the error interface.
func (e *CheckoutError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("item %s does not exist", e.Item)
}

// Unwrap allows errors.Is(err, ErrUnknownItem).
func (e *CheckoutError) Unwrap() error {
	return ErrUnknownItem
}

// Kind implements common.Kinded.
func (e *CheckoutError) Kind() common.Kind { return common.KindCheckout }
