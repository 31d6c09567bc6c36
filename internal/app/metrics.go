package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-gas-delivery/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter     `name:"gateway_retries_total"`
	RouteCacheHitsTotal    prometheus.Counter     `name:"route_cache_hits_total"`
	RouteCacheMissesTotal  prometheus.Counter     `name:"route_cache_misses_total"`
	RouteFallbacksTotal    prometheus.Counter     `name:"route_fallbacks_total"`
	EventsPublishedTotal   *prometheus.CounterVec `name:"events_published_total"`
	EventsConsumedTotal    *prometheus.CounterVec `name:"events_consumed_total"`
}

// register adds c to the default registry. A collector registered earlier
// under the same descriptor is reused.
func register[T prometheus.Collector](c T, name string) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register(metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total"); err != nil {
		return metricsOut{}, err
	}
	if out.GatewayRetriesTotal, err = register(metrics.NewGatewayRetriesTotal(), "gateway_retries_total"); err != nil {
		return metricsOut{}, err
	}
	if out.RouteCacheHitsTotal, err = register(metrics.NewRouteCacheHitsTotal(), "route_cache_hits_total"); err != nil {
		return metricsOut{}, err
	}
	if out.RouteCacheMissesTotal, err = register(metrics.NewRouteCacheMissesTotal(), "route_cache_misses_total"); err != nil {
		return metricsOut{}, err
	}
	if out.RouteFallbacksTotal, err = register(metrics.NewRouteFallbacksTotal(), "route_fallbacks_total"); err != nil {
		return metricsOut{}, err
	}
	if out.EventsPublishedTotal, err = register(metrics.NewEventsPublishedTotal(), "events_published_total"); err != nil {
		return metricsOut{}, err
	}
	if out.EventsConsumedTotal, err = register(metrics.NewEventsConsumedTotal(), "events_consumed_total"); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}
