package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func money(v int64) Money { return decimal.NewFromInt(v) }

func TestLinePriceWithBundle(t *testing.T) {
	bundle := &Bundle{Qty: 2, Price: money(45)}
	want := map[int]int64{0: 0, 1: 30, 2: 45, 3: 75, 4: 90, 5: 120}
	for qty, expected := range want {
		got := LinePrice(Line{Qty: qty, UnitPrice: money(30), Bundle: bundle})
		if !got.Equal(money(expected)) {
			t.Fatalf("qty %d: expected %d, got %s", qty, expected, got)
		}
	}
}

func TestLinePriceWithoutBundle(t *testing.T) {
	got := LinePrice(Line{Qty: 3, UnitPrice: decimal.RequireFromString("15.5")})
	if !got.Equal(decimal.RequireFromString("46.5")) {
		t.Fatalf("expected 46.5, got %s", got)
	}
}

func TestSplit(t *testing.T) {
	bundles, loose := Split(7, &Bundle{Qty: 3, Price: money(130)})
	if bundles != 2 || loose != 1 {
		t.Fatalf("expected 2 bundles and 1 loose, got %d and %d", bundles, loose)
	}
	bundles, loose = Split(4, nil)
	if bundles != 0 || loose != 4 {
		t.Fatalf("expected everything loose, got %d and %d", bundles, loose)
	}
	bundles, loose = Split(-1, &Bundle{Qty: 2})
	if bundles != 0 || loose != 0 {
		t.Fatalf("expected nothing for negative qty, got %d and %d", bundles, loose)
	}
}

func TestComputeSummary(t *testing.T) {
	summary := Compute([]Line{
		{Qty: 3, UnitPrice: money(30), Bundle: &Bundle{Qty: 2, Price: money(45)}},
		{Qty: 1, UnitPrice: money(20)},
		{Qty: 0, UnitPrice: money(1000)},
	})
	if !summary.Subtotal.Equal(money(110)) {
		t.Fatalf("expected subtotal 110, got %s", summary.Subtotal)
	}
	if !summary.Total.Equal(money(95)) {
		t.Fatalf("expected total 95, got %s", summary.Total)
	}
	if !summary.Discount.Equal(money(15)) {
		t.Fatalf("expected discount 15, got %s", summary.Discount)
	}
}

func TestComputeEmpty(t *testing.T) {
	summary := Compute(nil)
	if !summary.Total.IsZero() || !summary.Subtotal.IsZero() || !summary.Discount.IsZero() {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
