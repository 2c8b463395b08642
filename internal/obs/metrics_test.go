package obs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/internal/obs"
)

func TestPricingMetricsRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewPricingMetrics("toko", registry)

	metrics.CatalogParseTotal.WithLabelValues("ok").Inc()
	metrics.CheckoutTotal.WithLabelValues("unknown_item").Inc()
	metrics.BasketSize.Observe(3)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogParseTotal.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.CheckoutTotal.WithLabelValues("unknown_item")))
	require.Equal(t, 1, testutil.CollectAndCount(metrics.BasketSize))
}

func TestPricingMetricsReuseExistingCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := obs.NewPricingMetrics("toko", registry)
	first.CheckoutTotal.WithLabelValues("ok").Inc()

	second := obs.NewPricingMetrics("toko", registry)
	second.CheckoutTotal.WithLabelValues("ok").Inc()

	require.Equal(t, 2.0, testutil.ToFloat64(first.CheckoutTotal.WithLabelValues("ok")))
}

func TestWriteTextfile(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewPricingMetrics("toko", registry)
	metrics.CatalogItems.Set(4)

	path := filepath.Join(t.TempDir(), "pricer.prom")
	require.NoError(t, obs.WriteTextfile(path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "toko_catalog_items 4"), string(data))

	require.NoError(t, obs.WriteTextfile("", registry))
}
