package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns the metrics registry and all instrument vectors.
type Collector struct {
	registry *prometheus.Registry

	// HTTP surface
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Outbound provider calls
	providerCallsTotal   *prometheus.CounterVec
	providerCallDuration *prometheus.HistogramVec

	// Chat token consumption
	chatTokensTotal *prometheus.CounterVec
}

// NewCollector creates a collector with all metrics registered under the
// given namespace. Go runtime and process collectors are included.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		providerCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_calls_total",
				Help:      "Total number of outbound provider calls",
			},
			[]string{"provider", "operation", "status"},
		),

		providerCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_call_duration_seconds",
				Help:      "Outbound provider call duration in seconds",
				// Speech synthesis can take several seconds.
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
			[]string{"provider", "operation"},
		),

		chatTokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_tokens_total",
				Help:      "Total chat tokens consumed",
			},
			[]string{"model", "type"},
		),
	}

	registry.MustRegister(
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.providerCallsTotal,
		c.providerCallDuration,
		c.chatTokensTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// RecordHTTPRequest records one served HTTP request.
func (c *Collector) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordProviderCall records one outbound provider call.
func (c *Collector) RecordProviderCall(provider, operation, status string, duration time.Duration) {
	c.providerCallsTotal.WithLabelValues(provider, operation, status).Inc()
	c.providerCallDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

// RecordChatTokens records token consumption for a chat completion.
func (c *Collector) RecordChatTokens(model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		c.chatTokensTotal.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		c.chatTokensTotal.WithLabelValues(model, "completion").Add(float64(completionTokens))
	}
}

// Registry returns the underlying registry, used by tests to gather.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
