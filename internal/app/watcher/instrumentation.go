package watcher

import (
	cache "github.com/patrickmn/go-cache"            // In-memory cache.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/esconfig/internal/pkg/metrics"
)

// Instrumentation holds Prometheus metrics specific to
// the watcher App.
type Instrumentation struct {
	// Count of polls, labeled by status.
	Polls *prometheus.CounterVec

	// Duration of polls, labeled by status.
	PollDuration *prometheus.HistogramVec

	// Per domain status flags and counts.
	Processing        *prometheus.GaugeVec
	UpgradeProcessing *prometheus.GaugeVec
	Deleted           *prometheus.GaugeVec
	InstanceCount     *prometheus.GaugeVec
	UpdateAvailable   *prometheus.GaugeVec

	// Set to 1 if an option group of a domain is Active.
	OptionActive *prometheus.GaugeVec

	// Number of Elasticsearch versions a domain can be upgraded to.
	UpgradeTargets *prometheus.GaugeVec

	// Number of domains with cached upgrade targets.
	UpgradeTargetsCached prometheus.GaugeFunc
}

// NewInstrumentation returns a new Instrumentation.
func NewInstrumentation(namespace string, targets *cache.Cache) *Instrumentation {
	domainGauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "domain",
			Name:      name,
			Help:      help,
		}, append([]string{metrics.LabelDomain}, labels...))
	}
	return &Instrumentation{
		Polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Count of the number of times watcher has polled the Elasticsearch Service API.",
		}, []string{metrics.LabelStatus}),
		PollDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "poll_duration_seconds",
			Help:      "Duration of polls of the Elasticsearch Service API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{metrics.LabelStatus}),
		Processing:        domainGauge("processing", "Set to 1 if a configuration change is being applied to the domain."),
		UpgradeProcessing: domainGauge("upgrade_processing", "Set to 1 if the domain is being upgraded."),
		Deleted:           domainGauge("deleted", "Set to 1 if the domain has been deleted."),
		InstanceCount:     domainGauge("instance_count", "Number of data instances of the domain."),
		UpdateAvailable:   domainGauge("service_software_update_available", "Set to 1 if a service software update is available."),
		OptionActive:      domainGauge("option_active", "Set to 1 if the option group of the domain is Active.", metrics.LabelOption),
		UpgradeTargets:    domainGauge("upgrade_targets", "Number of Elasticsearch versions the domain can be upgraded to."),
		UpgradeTargetsCached: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upgrade_targets_cached",
			Help:      "Number of domains with cached upgrade targets.",
		}, func() float64 { return float64(targets.ItemCount()) }),
	}
}

// deleteDomain deletes the series of domain from every per domain
// metric. options are the option groups the domain had series for.
func (m *Instrumentation) deleteDomain(domain string, options []string) {
	for _, g := range []*prometheus.GaugeVec{
		m.Processing,
		m.UpgradeProcessing,
		m.Deleted,
		m.InstanceCount,
		m.UpdateAvailable,
		m.UpgradeTargets,
	} {
		g.DeleteLabelValues(domain)
	}
	for _, option := range options {
		m.OptionActive.DeleteLabelValues(domain, option)
	}
}

func (m *Instrumentation) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Polls,
		m.PollDuration,
		m.Processing,
		m.UpgradeProcessing,
		m.Deleted,
		m.InstanceCount,
		m.UpdateAvailable,
		m.OptionActive,
		m.UpgradeTargets,
		m.UpgradeTargetsCached,
	}
}

// Describe implements the prometheus.Collector interface.
func (m *Instrumentation) Describe(c chan<- *prometheus.Desc) {
	for _, col := range m.collectors() {
		col.Describe(c)
	}
}

// Collect implements the prometheus.Collector interface.
func (m *Instrumentation) Collect(c chan<- prometheus.Metric) {
	for _, col := range m.collectors() {
		col.Collect(c)
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
