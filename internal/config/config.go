package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	DB               DB
	Kafka            Kafka
	Redis            Redis
	Directions       Directions
	RateLimit        RateLimit
	Pprof            Pprof
	Janitor          Janitor
	Log              Log
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores event bus settings. An empty broker list disables Kafka.
type Kafka struct {
	Brokers     []string
	Topic       string
	WorkerGroup string
	LiveGroup   string
}

// Enabled reports whether brokers and a topic are configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && strings.TrimSpace(k.Topic) != ""
}

// Redis stores the shared route cache location. Empty URL selects the in-memory cache.
type Redis struct {
	URL string
}

// Directions stores directions API client settings.
type Directions struct {
	BaseURL         string
	APIKey          string
	Timeout         time.Duration
	MaxAttempts     int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	CacheTTL        time.Duration
	CacheMaxEntries int
}

// RateLimit stores per-client HTTP limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Janitor stores periodic cleanup settings of the worker.
type Janitor struct {
	Interval        time.Duration
	RedispatchAfter time.Duration
	PendingTTL      time.Duration
	DriverIdleTTL   time.Duration
}

// Log stores logger settings.
type Log struct {
	Level  string
	Format string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             DefaultPort(),
		OperationTimeout: defaultOperationTimeout,
		DB:               DefaultDB(),
		Kafka:            DefaultKafka(),
		Directions:       DefaultDirections(),
		RateLimit:        DefaultRateLimit(),
		Pprof:            DefaultPprof(),
		Janitor:          DefaultJanitor(),
		Log:              DefaultLog(),
	}

	var errs []error
	p := &envParser{}

	cfg.Port = p.int("PORT", cfg.Port)
	cfg.OperationTimeout = p.duration("OPERATION_TIMEOUT", cfg.OperationTimeout)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		errs = append(errs, fmt.Errorf("POSTGRES_PORT: %w", err))
	}

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.Topic = envString("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.WorkerGroup = envString("KAFKA_WORKER_GROUP", cfg.Kafka.WorkerGroup)
	cfg.Kafka.LiveGroup = envString("KAFKA_LIVE_GROUP", cfg.Kafka.LiveGroup)

	cfg.Redis.URL = envString("REDIS_URL", cfg.Redis.URL)

	d := &cfg.Directions
	d.BaseURL = envString("DIRECTIONS_BASE_URL", d.BaseURL)
	d.APIKey = envString("DIRECTIONS_API_KEY", d.APIKey)
	d.Timeout = p.duration("DIRECTIONS_TIMEOUT", d.Timeout)
	d.MaxAttempts = p.int("DIRECTIONS_MAX_ATTEMPTS", d.MaxAttempts)
	d.BaseDelay = p.duration("DIRECTIONS_BASE_DELAY", d.BaseDelay)
	d.MaxDelay = p.duration("DIRECTIONS_MAX_DELAY", d.MaxDelay)
	d.CacheTTL = p.duration("ROUTE_CACHE_TTL", d.CacheTTL)
	d.CacheMaxEntries = p.int("ROUTE_CACHE_MAX_ENTRIES", d.CacheMaxEntries)

	rl := &cfg.RateLimit
	rl.Enabled = p.bool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = p.float("RATE_LIMIT_RPS", rl.Rate)
	rl.Burst = p.int("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = p.duration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = p.int("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)

	cfg.Pprof.Enabled = p.bool("PPROF_ENABLED", cfg.Pprof.Enabled)
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)

	cfg.Janitor.Interval = p.duration("JANITOR_INTERVAL", cfg.Janitor.Interval)
	cfg.Janitor.RedispatchAfter = p.duration("REDISPATCH_AFTER", cfg.Janitor.RedispatchAfter)
	cfg.Janitor.PendingTTL = p.duration("PENDING_REQUEST_TTL", cfg.Janitor.PendingTTL)
	cfg.Janitor.DriverIdleTTL = p.duration("DRIVER_IDLE_TTL", cfg.Janitor.DriverIdleTTL)

	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envString("LOG_FORMAT", cfg.Log.Format)

	errs = append(p.errs, errs...)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	if c.Directions.MaxAttempts <= 0 {
		return fmt.Errorf("invalid directions max attempts: %d", c.Directions.MaxAttempts)
	}
	if c.Directions.Timeout <= 0 {
		return fmt.Errorf("invalid directions timeout: %s", c.Directions.Timeout)
	}
	if c.Janitor.Interval <= 0 {
		return fmt.Errorf("invalid janitor interval: %s", c.Janitor.Interval)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

type envParser struct {
	errs []error
}

func (p *envParser) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *envParser) float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (p *envParser) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
