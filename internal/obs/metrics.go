package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics groups Prometheus collectors for catalog loading and checkouts.
type PricingMetrics struct {
	CatalogParseTotal *prometheus.CounterVec
	CatalogItems      prometheus.Gauge
	CheckoutTotal     *prometheus.CounterVec
	BasketSize        prometheus.Histogram
	SavingsTotal      prometheus.Counter
}

// NewPricingMetrics registers and returns pricing collectors.
func NewPricingMetrics(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		CatalogParseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_parse_total",
			Help:      "Count of pricing table parse outcomes.",
		}, []string{"result"}),
		CatalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Number of items in the most recently loaded catalog.",
		}),
		CheckoutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Count of checkout outcomes.",
		}, []string{"result"}),
		BasketSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_basket_size",
			Help:      "Number of scanned units per checkout.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		SavingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_savings_total",
			Help:      "Sum of bundle savings granted across checkouts.",
		}),
	}

	mustRegisterCollector(reg, m.CatalogParseTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CatalogParseTotal = v
		}
	})
	mustRegisterCollector(reg, m.CatalogItems, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Gauge); ok {
			m.CatalogItems = v
		}
	})
	mustRegisterCollector(reg, m.CheckoutTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CheckoutTotal = v
		}
	})
	mustRegisterCollector(reg, m.BasketSize, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.BasketSize = v
		}
	})
	mustRegisterCollector(reg, m.SavingsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.SavingsTotal = v
		}
	})
	return m
}

// WriteTextfile dumps the gatherer in text exposition format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register pricing metric: %w", err))
	}
}
