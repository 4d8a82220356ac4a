package main

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/techflow/demandmock/internal/catalog"
	"github.com/techflow/demandmock/internal/config"
	"github.com/techflow/demandmock/internal/intake"
	httpserver "github.com/techflow/demandmock/internal/interfaces/http"
	"github.com/techflow/demandmock/internal/interfaces/http/handlers"
	"github.com/techflow/demandmock/internal/ledger"
	"github.com/techflow/demandmock/internal/metrics"
	"github.com/techflow/demandmock/internal/signals"
)

type serveOptions struct {
	configPath string
	host       string
	port       int
	seed       int64
}

func registerServeFlags(fs *pflag.FlagSet, opts *serveOptions) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to YAML config (defaults used when omitted)")
	fs.StringVar(&opts.host, "host", "127.0.0.1", "listen host")
	fs.IntVarP(&opts.port, "port", "p", 5000, "listen port")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
}

func serveCmd(ctx context.Context) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mock telemetry API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = opts.host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = opts.port
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opts.seed
			}

			return serve(cmd.Context(), cfg)
		},
	}

	registerServeFlags(cmd.Flags(), &opts)
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := signals.NewSource(seed)

	registry := metrics.NewRegistry()
	handlerManager := handlers.NewHandlers(handlers.Deps{
		Catalog:     cat,
		Ledger:      ledger.New(cat, rng),
		Sales:       signals.NewSalesGenerator(cat, rng, cfg.Generators.SalesMinEvents, cfg.Generators.SalesMaxEvents),
		Competitors: signals.NewCompetitorGenerator(cat, rng, cfg.Catalog.Competitors),
		Sentiment:   signals.NewSentimentGenerator(cat, rng),
		Macro:       signals.NewMacroGenerator(rng),
		Supply:      signals.NewSupplyGenerator(rng, cfg.Generators.SupplyEventProbability),
		Intake:      intake.New(rng),
		Metrics:     registry,
	})

	server, err := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
	}, handlerManager, registry)
	if err != nil {
		return err
	}

	log.Info().
		Int64("seed", seed).
		Int("products", cat.Len()).
		Int("stores", len(cat.Stores())).
		Str("addr", server.GetAddress()).
		Msg("demandmock starting")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	skus := make([]string, 0, len(cfg.Catalog.Products))
	for sku := range cfg.Catalog.Products {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	products := make([]catalog.Product, 0, len(skus))
	for _, sku := range skus {
		p := cfg.Catalog.Products[sku]
		products = append(products, catalog.Product{
			SKU:       sku,
			UnitPrice: decimal.NewFromFloat(p.Price),
			Category:  p.Category,
			Brand:     p.Brand,
		})
	}
	return catalog.New(products, cfg.Catalog.Stores)
}
