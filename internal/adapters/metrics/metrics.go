// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/idgov/internal/core/domain"
)

// Collector implements ports.Metrics. All collectors live in a private
// registry so repeated construction in tests cannot collide.
type Collector struct {
	registry *prometheus.Registry

	resolveHits     prometheus.Counter
	resolveMisses   prometheus.Counter
	resolveFailures prometheus.Counter

	pagesLoaded *prometheus.CounterVec
	itemsLoaded *prometheus.CounterVec

	pollTicks   *prometheus.CounterVec
	jobOutcomes *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		resolveHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgov_resolve_hits_total",
			Help: "Total number of resolution cache hits",
		}),
		resolveMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgov_resolve_misses_total",
			Help: "Total number of resolution cache misses",
		}),
		resolveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgov_resolve_failures_total",
			Help: "Total number of failed resolver flights",
		}),
		pagesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idgov_pages_loaded_total",
			Help: "Total number of fetched listing windows",
		}, []string{"resource_type"}),
		itemsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idgov_items_loaded_total",
			Help: "Total number of listed resources",
		}, []string{"resource_type"}),
		pollTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idgov_poll_ticks_total",
			Help: "Total number of job status fetches",
		}, []string{"kind"}),
		jobOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "idgov_job_outcomes_total",
			Help: "Total number of finished operations by outcome",
		}, []string{"kind", "category"}),
	}

	c.registry.MustRegister(
		c.resolveHits,
		c.resolveMisses,
		c.resolveFailures,
		c.pagesLoaded,
		c.itemsLoaded,
		c.pollTicks,
		c.jobOutcomes,
	)

	return c
}

// ResolveHit records a resolution cache hit.
func (c *Collector) ResolveHit() {
	c.resolveHits.Inc()
}

// ResolveMiss records a resolution cache miss.
func (c *Collector) ResolveMiss() {
	c.resolveMisses.Inc()
}

// ResolveFailure records a failed resolver flight.
func (c *Collector) ResolveFailure() {
	c.resolveFailures.Inc()
}

// PageLoaded records one fetched listing window of n items.
func (c *Collector) PageLoaded(t domain.ResourceType, n int) {
	c.pagesLoaded.WithLabelValues(string(t)).Inc()
	c.itemsLoaded.WithLabelValues(string(t)).Add(float64(n))
}

// PollTick records one job status fetch.
func (c *Collector) PollTick(kind domain.JobKind) {
	c.pollTicks.WithLabelValues(string(kind)).Inc()
}

// JobOutcome records the final category of one operation.
func (c *Collector) JobOutcome(kind domain.JobKind, category domain.OutcomeCategory) {
	c.jobOutcomes.WithLabelValues(string(kind), string(category)).Inc()
}

// Handler exposes the registry in Prometheus text format, for the optional
// --metrics-addr listener.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
