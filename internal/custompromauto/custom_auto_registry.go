// Package custompromauto keeps the txpoolviz metrics in their own registry, so /metrics
// only exposes what the trackers and the api record.
package custompromauto

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	registry.MustRegister(collectors.NewBuildInfoCollector())
	auto = promauto.With(registry)
}

func Auto() promauto.Factory {
	return auto
}

func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry, counting its own scrape errors.
func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(registry, promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry: registry,
	}))
}
