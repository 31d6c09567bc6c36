package config

import "time"

const defaultPort = 8080

const defaultOperationTimeout = 3 * time.Second

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "gas",
	Pass: "gas",
	Name: "gas_delivery",
}

var defaultKafka = Kafka{
	Topic:       "delivery-requests",
	WorkerGroup: "gas-delivery-worker",
	LiveGroup:   "gas-delivery-live",
}

var defaultDirections = Directions{
	BaseURL:         "https://maps.googleapis.com",
	Timeout:         10 * time.Second,
	MaxAttempts:     3,
	BaseDelay:       time.Second,
	MaxDelay:        4 * time.Second,
	CacheTTL:        5 * time.Minute,
	CacheMaxEntries: 50,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

var defaultJanitor = Janitor{
	Interval:        30 * time.Second,
	RedispatchAfter: 30 * time.Second,
	PendingTTL:      15 * time.Minute,
	DriverIdleTTL:   10 * time.Minute,
}

var defaultLog = Log{
	Level:  "info",
	Format: "json",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default event bus settings (no brokers).
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultDirections returns the default directions client settings.
func DefaultDirections() Directions {
	return defaultDirections
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof settings.
func DefaultPprof() Pprof {
	return defaultPprof
}

// DefaultJanitor returns the default janitor settings.
func DefaultJanitor() Janitor {
	return defaultJanitor
}

// DefaultLog returns the default logger settings.
func DefaultLog() Log {
	return defaultLog
}
