package ratelimit

// Limiter decides per client key whether a request may proceed.
type Limiter interface {
	Allow(key string) bool
}
