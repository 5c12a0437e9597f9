package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics for the service. A nil *Registry is valid and records nothing.
type Registry struct {
	registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Cache Metrics
	RegistryCacheHits   prometheus.Counter
	RegistryCacheMisses prometheus.Counter

	// Business Metrics
	PartsProduced        *prometheus.CounterVec
	PartTransitions      *prometheus.CounterVec
	AircraftAssembled    *prometheus.CounterVec
	AircraftDisassembled prometheus.Counter
	SlotReassignments    *prometheus.CounterVec
}

// New initializes a Registry on its own prometheus registry
func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aircraft_http_requests_total",
				Help: "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aircraft_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "aircraft_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		RegistryCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "aircraft_registry_cache_hits_total",
				Help: "Reference data lookups served from cache",
			},
		),
		RegistryCacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "aircraft_registry_cache_misses_total",
				Help: "Reference data lookups that reloaded from the database",
			},
		),

		PartsProduced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aircraft_parts_produced_total",
				Help: "Parts produced by part type",
			},
			[]string{"part_type"},
		),
		PartTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aircraft_part_transitions_total",
				Help: "Part status transitions",
			},
			[]string{"from", "to"},
		),
		AircraftAssembled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aircraft_assembled_total",
				Help: "Aircraft assembled by model",
			},
			[]string{"aircraft_model"},
		),
		AircraftDisassembled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "aircraft_disassembled_total",
				Help: "Aircraft disassembled",
			},
		),
		SlotReassignments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aircraft_slot_reassignments_total",
				Help: "Slot reassignments by slot",
			},
			[]string{"slot"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer returns the underlying prometheus registry
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) CacheHit() {
	if r != nil {
		r.RegistryCacheHits.Inc()
	}
}

func (r *Registry) CacheMiss() {
	if r != nil {
		r.RegistryCacheMisses.Inc()
	}
}

func (r *Registry) PartProduced(partType string) {
	if r != nil {
		r.PartsProduced.WithLabelValues(partType).Inc()
	}
}

func (r *Registry) PartTransition(from, to string) {
	if r != nil {
		r.PartTransitions.WithLabelValues(from, to).Inc()
	}
}

func (r *Registry) Assembled(aircraftModel string) {
	if r != nil {
		r.AircraftAssembled.WithLabelValues(aircraftModel).Inc()
	}
}

func (r *Registry) Disassembled() {
	if r != nil {
		r.AircraftDisassembled.Inc()
	}
}

func (r *Registry) SlotReassigned(slot string) {
	if r != nil {
		r.SlotReassignments.WithLabelValues(slot).Inc()
	}
}
