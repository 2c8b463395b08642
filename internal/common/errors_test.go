package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/internal/catalog"
	"github.com/noah-isme/toko-pricing/internal/checkout"
	"github.com/noah-isme/toko-pricing/internal/common"
)

func TestKindOf(t *testing.T) {
	_, parseErr := catalog.Parse("garbage")
	_, checkoutErr := checkout.Checkout(catalog.MustParse("|Item|Price|Offer|\n|-|-|-|"), []string{"Apple"})

	require.Equal(t, common.KindParse, common.KindOf(parseErr))
	require.Equal(t, common.KindCheckout, common.KindOf(checkoutErr))
	require.Equal(t, common.KindParse, common.KindOf(fmt.Errorf("load: %w", parseErr)))
	require.Equal(t, common.KindUnknown, common.KindOf(errors.New("boom")))
	require.Equal(t, common.KindUnknown, common.KindOf(nil))

	require.True(t, common.IsKind(checkoutErr, common.KindCheckout))
	require.False(t, common.IsKind(checkoutErr, common.KindParse))
	require.False(t, common.IsKind(nil, common.KindUnknown))
}

func TestFingerprint(t *testing.T) {
	a := common.Fingerprint("| Item | Price | Offer |")
	require.Len(t, a, 12)
	require.Equal(t, a, common.Fingerprint("| Item | Price | Offer |"))
	require.NotEqual(t, a, common.Fingerprint("| Item | Price | Offer |\n"))
}
