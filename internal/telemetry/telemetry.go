// Package telemetry exposes server counters in the Prometheus format.
package telemetry

import (
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	BandNone  = "none"
	BandWorst = "worst"
	BandBest  = "best"

	SourceSingle = "single"
	SourceBatch  = "batch"
)

type Telemetry struct {
	registry       *prometheus.Registry
	resolutions    *prometheus.CounterVec
	measureUpdates *prometheus.CounterVec
}

func New() *Telemetry {
	reg := prometheus.NewRegistry()

	t := &Telemetry{
		registry: reg,
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "measurecolor_resolutions_total",
			Help: "Number of resolved measure colors by gradient half.",
		}, []string{"band"}),
		measureUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "measurecolor_measure_updates_total",
			Help: "Number of stored measures by request kind.",
		}, []string{"source"}),
	}
	reg.MustRegister(t.resolutions, t.measureUpdates)

	return t
}

// Band относит процент к половине градиента
func Band(percent float64) string {
	switch {
	case math.IsNaN(percent) || percent < 0:
		return BandNone
	case percent > 50:
		return BandBest
	default:
		return BandWorst
	}
}

func (t *Telemetry) ObserveResolution(percent float64) {
	t.resolutions.WithLabelValues(Band(percent)).Inc()
}

func (t *Telemetry) ObserveUpdates(source string, count int) {
	t.measureUpdates.WithLabelValues(source).Add(float64(count))
}

func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

func (t *Telemetry) Handler() http.Handler {
	// Сжатием ответов занимается gzipmiddleware
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{DisableCompression: true})
}
