/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "hanabi_variants"

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	sockets  prometheus.Gauge
}

func newMetrics(reg *Registry) *metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(r)

	m := &metrics{
		registry: r,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Requests served, by route.",
		}, []string{"route"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving requests, by route.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"route"}),
		sockets: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "websocket_connections",
			Help:      "Open lookup websocket connections.",
		}),
	}

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "catalog_compile_seconds",
		Help:      "Time taken to compile the variant catalog at startup.",
	}).Set(reg.Duration.Seconds())

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "variants_loaded",
		Help:      "Variants in the compiled catalog.",
	}, func() float64 {
		return float64(reg.Catalog.Len())
	})

	return m
}

// instrument counts and times h under route. A nil receiver returns h unchanged.
func (m *metrics) instrument(route string, h httprouter.Handle) httprouter.Handle {
	if m == nil {
		return h
	}

	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		h(w, r, p)

		m.requests.WithLabelValues(route).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(startTime).Seconds())
	}
}

func (m *metrics) socketOpened() {
	if m != nil {
		m.sockets.Inc()
	}
}

func (m *metrics) socketClosed() {
	if m != nil {
		m.sockets.Dec()
	}
}

func registerMetricsHandler(cfg *Config, mux *httprouter.Router, m *metrics) {
	mux.Handler("GET", cfg.prefix+"/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}

func registerProfileHandlers(cfg *Config, mux *httprouter.Router) {
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handler("GET", cfg.prefix+"/pprof/"+name, pprof.Handler(name))
	}
	mux.HandlerFunc("GET", cfg.prefix+"/pprof/cmdline", pprof.Cmdline)
	mux.HandlerFunc("GET", cfg.prefix+"/pprof/profile", pprof.Profile)
	mux.HandlerFunc("GET", cfg.prefix+"/pprof/symbol", pprof.Symbol)
	mux.HandlerFunc("GET", cfg.prefix+"/pprof/trace", pprof.Trace)
}
