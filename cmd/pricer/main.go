package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-pricing/internal/app"
	"github.com/noah-isme/toko-pricing/internal/common"
	"github.com/noah-isme/toko-pricing/internal/config"
	"github.com/noah-isme/toko-pricing/internal/obs"
)

const (
	exitOK = iota
	exitConfig
	exitParse
	exitCheckout
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	registry := prometheus.NewRegistry()
	metrics := obs.NewPricingMetrics(cfg.MetricsNamespace, registry)

	code := run(cfg, logger, metrics, os.Args[1:], os.Stdin, os.Stdout)
	if err := obs.WriteTextfile(cfg.MetricsTextfile, registry); err != nil {
		logger.Error().Err(err).Msg("flush metrics")
	}
	os.Exit(code)
}

func run(cfg *config.Config, logger zerolog.Logger, metrics *obs.PricingMetrics, args []string, stdin io.Reader, stdout io.Writer) int {
	pricer, err := app.LoadPricer(cfg.TablePath, logger, metrics)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if common.IsKind(err, common.KindParse) {
			return exitParse
		}
		return exitConfig
	}

	basket := args
	if len(basket) == 0 {
		basket, err = readBasket(stdin)
		if err != nil {
			logger.Error().Err(err).Msg("read basket")
			return exitConfig
		}
	}

	result, err := pricer.Checkout(basket)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCheckout
	}
	for _, line := range result.Lines {
		fmt.Fprintf(stdout, "%s x%d = %s\n", line.Name, line.Quantity, line.Total.String())
	}
	fmt.Fprintf(stdout, "total %s\n", result.Total.String())
	return exitOK
}

// readBasket reads one scanned name per line, ignoring blank lines.
func readBasket(r io.Reader) ([]string, error) {
	var basket []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		basket = append(basket, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan basket: %w", err)
	}
	return basket, nil
}
