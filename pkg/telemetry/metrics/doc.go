// Package metrics exposes Prometheus instrumentation for the Legal Hub
// backend: HTTP request counters and latency histograms, provider call
// counters and chat token counters, served through a promhttp handler.
package metrics
