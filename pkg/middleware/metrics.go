package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AlbaFramework/alba/pkg/router"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "alba").
	Namespace string

	// Subsystem is the metrics subsystem (default: "router").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for chain duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "alba",
		Subsystem: "router",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for a router.
type metrics struct {
	attemptsTotal    *prometheus.CounterVec
	chainDuration    *prometheus.HistogramVec
	transitionsTotal *prometheus.CounterVec
	stackDepth       prometheus.Gauge
}

// globalMetrics is the singleton metrics instance, created on first use so
// repeated Prometheus()/Transitions() calls share one registration.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		attemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_attempts_total",
			Help:        "Total navigation attempts that reached the middleware chain",
			ConstLabels: config.ConstLabels,
		}, []string{"route"}),

		chainDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "chain_duration_seconds",
			Help:        "Middleware chain execution duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		transitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_total",
			Help:        "Total committed stack transitions by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		stackDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "stack_depth",
			Help:        "Current number of entries on the route stack",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// getMetrics returns the shared metrics, creating them with config on first
// call. Later calls ignore config.
func getMetrics(config MetricsConfig) *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	return globalMetrics
}

// Prometheus creates middleware that measures navigation attempts.
//
// Metrics collected:
//   - alba_router_navigation_attempts_total: attempts by route pattern
//   - alba_router_chain_duration_seconds: chain execution duration
//
// The middleware always calls its continuation; it observes, never gates.
// Place it first in a route's chain so the duration covers the guards that
// follow it.
func Prometheus(opts ...MetricsOption) router.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	m := getMetrics(config)

	return router.MiddlewareFunc(func(route *router.RouteDefinition, next func(*router.RouteDefinition)) {
		m.attemptsTotal.WithLabelValues(route.Path()).Inc()
		start := time.Now()
		next(route)
		m.chainDuration.WithLabelValues(route.Path()).Observe(time.Since(start).Seconds())
	})
}

// Transitions attaches an event listener that counts committed transitions
// (push, pop, replace) and tracks the stack depth. It returns the detach
// func for the listener.
func Transitions(r *router.Router, opts ...MetricsOption) func() {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	m := getMetrics(config)

	record := func(kind string) {
		m.transitionsTotal.WithLabelValues(kind).Inc()
		m.stackDepth.Set(float64(r.Depth()))
	}
	return r.AddListener(&router.Listener{
		OnPush:    func(*router.PushEvent) { record("push") },
		OnPop:     func(*router.PopEvent) { record("pop") },
		OnReplace: func(*router.ReplaceEvent) { record("replace") },
	})
}
