package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redislib "github.com/redis/go-redis/v9"

	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/api/routes"
	cartsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/cart"
	catalogsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/catalog"
	checkoutsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/checkout"
	dashboardsvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/dashboard"
	orderssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/orders"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/session"
	userssvc "github.com/DESHIKATHEEKSHANI/E-Commerce-Store/internal/users"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/config"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/imageurl"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/localstore"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/logger"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/metrics"
	"github.com/DESHIKATHEEKSHANI/E-Commerce-Store/pkg/shopapi"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redislib.Client
	if cfg.Redis.Configured() {
		redisClient, err = localstore.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	state, closeState, err := newStateStore(cfg, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap state store", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeState(); err != nil {
			logg.Error(context.Background(), "error closing state store", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	shop, err := shopapi.New(cfg.Upstream, logg, metrics.NewUpstreamMetrics(registry))
	if err != nil {
		logg.Error(context.Background(), "failed to create shop API client", err)
		os.Exit(1)
	}

	carts, err := cartsvc.NewManager(state, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart manager", err)
		os.Exit(1)
	}
	defer func() {
		if err := carts.Close(); err != nil {
			logg.Error(context.Background(), "error draining cart writes", err)
		}
	}()

	sessions, err := session.NewManager(shop, state, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	var catalogCache catalogsvc.Cache
	if cfg.Cache.Enabled && redisClient != nil {
		catalogCache, err = catalogsvc.NewRedisCache(redisClient, cfg.Cache.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create catalog cache", err)
			os.Exit(1)
		}
	}

	catalogService, err := catalogsvc.NewService(shop, catalogCache, imageurl.New(shop.Origin()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}
	ordersService, err := orderssvc.NewService(shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	usersService, err := userssvc.NewService(shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}
	dashboardService, err := dashboardsvc.NewService(shop, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"state_backend": cfg.State.Backend,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg, logg, registry,
			carts, sessions, shop,
			catalogService, checkoutService, ordersService, usersService, dashboardService,
		),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "storefront server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// newStateStore wires the configured visitor state backend and returns the
// store alongside its close function.
func newStateStore(cfg *config.Config, redisClient *redislib.Client, logg *logger.Logger) (localstore.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.State.Backend {
	case config.StateBackendMemory:
		return localstore.NewMemory(), noop, nil
	case config.StateBackendRedis:
		store, err := localstore.NewRedisStore(redisClient, 0, logg)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	default:
		store, err := localstore.NewGormStore(context.Background(), cfg.State, logg)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}
