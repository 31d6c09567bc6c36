package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewRouteCacheHitsTotal counts routes served from the cache.
func NewRouteCacheHitsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_cache_hits_total",
		Help: "Total number of routes served from the route cache",
	})
}

// NewRouteCacheMissesTotal counts cache lookups that fell through to the directions gateway.
func NewRouteCacheMissesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_cache_misses_total",
		Help: "Total number of route cache misses",
	})
}

// NewRouteFallbacksTotal counts straight-line routes returned instead of a directions route.
func NewRouteFallbacksTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_fallbacks_total",
		Help: "Total number of straight-line fallback routes",
	})
}

// NewEventsPublishedTotal counts published request events by type.
func NewEventsPublishedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Total number of published delivery events",
	}, []string{"type"})
}

// NewEventsConsumedTotal counts consumed events by type and outcome.
func NewEventsConsumedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_consumed_total",
		Help: "Total number of consumed delivery events",
	}, []string{"type", "result"})
}
