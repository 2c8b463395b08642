package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-pricing/internal/catalog"
	"github.com/noah-isme/toko-pricing/internal/checkout"
	"github.com/noah-isme/toko-pricing/internal/common"
	"github.com/noah-isme/toko-pricing/internal/obs"
)

// Result is a priced basket tagged with a receipt id for log correlation.
type Result struct {
	ReceiptID uuid.UUID `json:"receiptId"`
	checkout.Receipt
}

// Pricer wires a parsed catalog to checkout with logging and metrics.
// It is safe for concurrent use once constructed.
type Pricer struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
	metrics *obs.PricingMetrics
	newID   func() uuid.UUID
}

// NewPricer parses the table and records the outcome. Metrics may be nil.
func NewPricer(table string, logger zerolog.Logger, metrics *obs.PricingMetrics) (*Pricer, error) {
	logger = logger.With().Str("table_sha", common.Fingerprint(table)).Logger()
	cat, err := catalog.Parse(table)
	if err != nil {
		var perr *catalog.ParseError
		code := "unknown"
		if errors.As(err, &perr) {
			code = perr.Code()
		}
		if metrics != nil {
			metrics.CatalogParseTotal.WithLabelValues(code).Inc()
		}
		logger.Error().Err(err).Str("reason", code).Msg("parse pricing table")
		return nil, fmt.Errorf("parse pricing table: %w", err)
	}
	if metrics != nil {
		metrics.CatalogParseTotal.WithLabelValues("ok").Inc()
		metrics.CatalogItems.Set(float64(cat.Len()))
	}
	logger.Info().Int("items", cat.Len()).Msg("pricing table loaded")
	return &Pricer{catalog: cat, logger: logger, metrics: metrics, newID: uuid.New}, nil
}

// LoadPricer reads the table from path and builds a Pricer.
func LoadPricer(path string, logger zerolog.Logger, metrics *obs.PricingMetrics) (*Pricer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing table: %w", err)
	}
	return NewPricer(string(data), logger.With().Str("table", path).Logger(), metrics)
}

// Catalog returns the immutable catalog backing the pricer.
func (p *Pricer) Catalog() *catalog.Catalog {
	return p.catalog
}

// Checkout prices the basket and returns the receipt.
func (p *Pricer) Checkout(basket []string) (Result, error) {
	id := p.newID()
	log := p.logger.With().Str("receipt_id", id.String()).Logger()

	receipt, err := checkout.Price(p.catalog, basket)
	if err != nil {
		result := "error"
		if errors.Is(err, checkout.ErrUnknownItem) {
			result = "unknown_item"
		}
		if p.metrics != nil {
			p.metrics.CheckoutTotal.WithLabelValues(result).Inc()
		}
		log.Warn().Err(err).Int("scanned", len(basket)).Msg("checkout rejected")
		return Result{}, fmt.Errorf("checkout: %w", err)
	}

	if p.metrics != nil {
		p.metrics.CheckoutTotal.WithLabelValues("ok").Inc()
		p.metrics.BasketSize.Observe(float64(receipt.Items()))
		savings, _ := receipt.Savings.Float64()
		if savings > 0 {
			p.metrics.SavingsTotal.Add(savings)
		}
	}
	log.Info().
		Int("scanned", len(basket)).
		Int("lines", len(receipt.Lines)).
		Str("total", receipt.Total.String()).
		Str("savings", receipt.Savings.String()).
		Msg("checkout completed")
	return Result{ReceiptID: id, Receipt: receipt}, nil
}
