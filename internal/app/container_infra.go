package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gas-delivery/internal/cache"
	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/domain"
	"service-gas-delivery/internal/gateway/directions"
	"service-gas-delivery/internal/logx"
	"service-gas-delivery/internal/service/routing"
)

// closer releases a resource on shutdown.
type closer func() error

type closerOut struct {
	dig.Out
	Closer closer `group:"closers"`
}

type routeGateway interface {
	Route(ctx context.Context, origin, dest domain.Location) (domain.Route, error)
}

type routeCacheOut struct {
	dig.Out
	Cache  cache.RouteCache
	Closer closer `group:"closers"`
}

// newRouteCache selects Redis when REDIS_URL is set, the in-memory cache otherwise.
func newRouteCache(ctx context.Context, cfg *config.Config, logger logx.Logger) (routeCacheOut, error) {
	d := cfg.Directions
	if cfg.Redis.URL == "" {
		logger.Info("route cache: in-memory", logx.Int("max_entries", d.CacheMaxEntries))
		return routeCacheOut{
			Cache:  cache.NewMemoryCache(d.CacheTTL, d.CacheMaxEntries, nil),
			Closer: func() error { return nil },
		}, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return routeCacheOut{}, err
	}
	logger.Info("route cache: redis")
	return routeCacheOut{
		Cache:  cache.NewRedisCache(client, d.CacheTTL),
		Closer: client.Close,
	}, nil
}

type gatewayIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

// newRouteGateway returns nil without an API key; the planner then serves
// straight-line routes only.
func newRouteGateway(in gatewayIn) routeGateway {
	d := in.Cfg.Directions
	if d.APIKey == "" {
		in.Logger.Warn("directions api key not set, routes fall back to straight lines")
		return nil
	}
	client := &http.Client{Timeout: d.Timeout}
	return directions.NewRetryingGateway(
		directions.NewHTTPGateway(client, d.BaseURL, d.APIKey),
		in.Logger.With(logx.String("component", "directions")),
		in.Retries,
		directions.RetryConfig{
			MaxAttempts: d.MaxAttempts,
			BaseDelay:   d.BaseDelay,
			MaxDelay:    d.MaxDelay,
			Timeout:     d.Timeout,
		},
	)
}

type plannerIn struct {
	dig.In
	Gateway   routeGateway `optional:"true"`
	Cache     cache.RouteCache
	Logger    logx.Logger
	Hits      prometheus.Counter `name:"route_cache_hits_total"`
	Misses    prometheus.Counter `name:"route_cache_misses_total"`
	Fallbacks prometheus.Counter `name:"route_fallbacks_total"`
}

func newPlanner(in plannerIn) *routing.Planner {
	return routing.NewPlanner(in.Gateway, in.Cache, in.Logger, routing.Counters{
		Hits:      in.Hits,
		Misses:    in.Misses,
		Fallbacks: in.Fallbacks,
	})
}

func registerInfra(container *dig.Container) error {
	return provideAll(container,
		provideMetrics,
		newRouteCache,
		newRouteGateway,
		newPlanner,
	)
}
