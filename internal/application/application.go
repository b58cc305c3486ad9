package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"robux_topup/internal/config"
	"robux_topup/internal/domain/service/checkout"
	"robux_topup/internal/domain/service/pricing"
	"robux_topup/internal/infrastructure/metrics"
	"robux_topup/internal/infrastructure/store"
	"robux_topup/internal/server"
	"robux_topup/pkg/application/connectors"
	"robux_topup/pkg/application/modules"
	"robux_topup/pkg/contextx"
	"robux_topup/pkg/logx"
	"robux_topup/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Run(ctx context.Context, cfg config.Config) error {
	table, err := cfg.Pricing.TierTable()
	if err != nil {
		return fmt.Errorf("cfg.Pricing.TierTable: %w", err)
	}

	calculator, err := pricing.NewCalculator(cfg.Pricing.FeeRate, table, cfg.Pricing.MaxAmount)
	if err != nil {
		return fmt.Errorf("pricing.NewCalculator: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	checkoutMetrics, err := metrics.NewCheckout(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewCheckout: %w", err)
	}

	sessions, ready, closeStore, err := sessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	checkoutService := checkout.NewService(
		calculator,
		sessions,
		store.NewMemoryOrders(cfg.Checkout.OrderRetention),
		checkout.NewOrderIDGenerator(cfg.Checkout.OrderIDPrefix),
		checkout.Options{
			SubmitDelay:   cfg.Checkout.SubmitDelay,
			PaymentExpiry: cfg.Checkout.PaymentExpiry,
			PaymentCode:   cfg.Checkout.PaymentCode,
		},
	).WithMetrics(checkoutMetrics)

	srv := server.NewServer(
		server.NewPricingServer(calculator, checkoutMetrics),
		server.NewCheckoutServer(checkoutService, calculator, checkoutMetrics, cfg.Checkout.BaseURL),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery,
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
	}

	logger(ctx).Info("pricing loaded",
		slog.String("fee-rate", calculator.FeeRate().String()),
		slog.Int("tiers", table.Len()),
		slog.Int64("min-amount", calculator.MinAmount()),
		slog.Int64("max-amount", calculator.MaxAmount()),
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.Metrics.ListenAddress, Gatherer: registry}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         ready,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// sessionStore picks the checkout session backend. The returned readiness
// check is nil for the in-process store.
func sessionStore(
	ctx context.Context,
	cfg config.Config,
) (checkout.SessionStore, func(context.Context) error, func(), error) {
	switch cfg.Checkout.SessionStore {
	case config.SessionStoreMemory:
		return store.NewMemorySessions(cfg.Checkout.SessionTTL), nil, func() {}, nil
	case config.SessionStoreRedis:
		redis := &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}

		sessions := store.NewRedisSessions(redis.Client(ctx), cfg.Checkout.SessionTTL)

		return sessions, redis.Ping, func() { redis.Close(context.WithoutCancel(ctx)) }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown session store %q", cfg.Checkout.SessionStore)
	}
}
