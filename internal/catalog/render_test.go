package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/internal/catalog"
)

func TestItemRowRoundTrip(t *testing.T) {
	items := []catalog.Item{
		{Name: "Apple", Price: dec("30"), Offer: &catalog.Offer{Quantity: 2, Price: dec("45")}},
		{Name: "Russet Potato", Price: dec("15.5")},
		{Name: "Kiwi", Price: dec("0.25"), Offer: &catalog.Offer{Quantity: 12, Price: dec("2.4")}},
	}
	for _, it := range items {
		t.Run(it.Name, func(t *testing.T) {
			cat, err := catalog.Parse("| Item | Price | Offer |\n|---|---|---|\n" + it.Row())
			require.NoError(t, err)
			got, ok := cat.Lookup(it.Name)
			require.True(t, ok)
			require.True(t, it.Equal(got), "got %+v", got)
		})
	}
}

func TestItemRowFormat(t *testing.T) {
	it := catalog.Item{Name: "Apple", Price: dec("30"), Offer: &catalog.Offer{Quantity: 2, Price: dec("45")}}
	require.Equal(t, "| Apple | 30 | 2 for 45 |", it.Row())
	require.Equal(t, "-", catalog.Item{Name: "Peach", Price: dec("60")}.OfferText())
}

func TestCatalogTableRoundTrip(t *testing.T) {
	cat := catalog.MustParse(fruitTable)

	table := cat.Table()
	require.Equal(t, `| Item   | Price for 1 item | Offer     |
|--------|------------------|-----------|
| Apple  | 30               | 2 for 45  |
| Banana | 50               | 3 for 130 |
| Peach  | 60               | -         |
| Kiwi   | 20               | -         |`, table)

	again, err := catalog.Parse(table)
	require.NoError(t, err)
	want, got := cat.Items(), again.Items()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, want[i].Equal(got[i]))
	}
}

func TestEmptyCatalogTableRoundTrip(t *testing.T) {
	cat := catalog.MustParse("| Item | Price | Offer |\n|---|---|---|")
	again, err := catalog.Parse(cat.Table())
	require.NoError(t, err)
	require.Zero(t, again.Len())
}
