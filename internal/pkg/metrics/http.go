package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentHTTP returns a copy of base whose transport is instrumented
// with Prometheus metrics. If base is nil, http.DefaultClient is copied.
//
// Observed are a gauge of in-flight requests, a histogram of request
// duration by method and status code, and histograms of DNS lookup and
// TLS handshake latency by trace event.
//
// The watcher hands the instrumented client to its AWS session, so
// calls to the configuration API are also traced at the transport level.
func InstrumentHTTP(base *http.Client, reg prometheus.Registerer, namespace string, constLabels map[string]string) (*http.Client, error) {
	if base == nil {
		base = http.DefaultClient
	}
	i := newHTTPInstrumentation(namespace, constLabels)
	if err := reg.Register(i); err != nil {
		return nil, err
	}
	c := *base
	c.Transport = i.wrap(base.Transport)
	return &c, nil
}

type httpInstrumentation struct {
	duration *prometheus.HistogramVec
	inflight prometheus.Gauge
	dns      *prometheus.HistogramVec
	tls      *prometheus.HistogramVec
}

func newHTTPInstrumentation(namespace string, constLabels map[string]string) *httpInstrumentation {
	histogram := func(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        name,
			Help:        help,
			Buckets:     buckets,
			ConstLabels: constLabels,
		}, labels)
	}
	return &httpInstrumentation{
		duration: histogram("request_duration_seconds", "A histogram of HTTP request latencies.",
			prometheus.DefBuckets, LabelStatusCode, LabelMethod),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "A gauge of in-flight HTTP requests.",
			ConstLabels: constLabels,
		}),
		dns: histogram("dns_duration_seconds", "A histogram of DNS lookup latencies.",
			[]float64{.005, .01, .025, .05}, LabelEvent),
		tls: histogram("tls_duration_seconds", "A histogram of TLS handshake latencies.",
			[]float64{.05, .1, .25, .5}, LabelEvent),
	}
}

// observeEvent returns a trace callback observing on h with LabelEvent set to event.
func observeEvent(h *prometheus.HistogramVec, event string) func(float64) {
	o := h.With(prometheus.Labels{LabelEvent: event})
	return o.Observe
}

func (i *httpInstrumentation) wrap(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	trace := &promhttp.InstrumentTrace{
		DNSStart:          observeEvent(i.dns, "dns_start"),
		DNSDone:           observeEvent(i.dns, "dns_done"),
		TLSHandshakeStart: observeEvent(i.tls, "tls_handshake_start"),
		TLSHandshakeDone:  observeEvent(i.tls, "tls_handshake_done"),
	}
	rt = promhttp.InstrumentRoundTripperDuration(i.duration, rt)
	rt = promhttp.InstrumentRoundTripperInFlight(i.inflight, rt)
	return promhttp.InstrumentRoundTripperTrace(trace, rt)
}

func (i *httpInstrumentation) collectors() []prometheus.Collector {
	return []prometheus.Collector{i.duration, i.inflight, i.dns, i.tls}
}

// Describe implements prometheus.Collector interface.
func (i *httpInstrumentation) Describe(c chan<- *prometheus.Desc) {
	for _, col := range i.collectors() {
		col.Describe(c)
	}
}

// Collect implements prometheus.Collector interface.
func (i *httpInstrumentation) Collect(c chan<- prometheus.Metric) {
	for _, col := range i.collectors() {
		col.Collect(c)
	}
}
