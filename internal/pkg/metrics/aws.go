package metrics

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentAWS adds Prometheus metrics to an AWS client or session.
//
// A Gauge is observed for in-flight requests with labels
// for AWS region, service, operation name, and HTTP method.
//
// A duration histogram is observed for each AWS API request attempt with
// the same labels plus the returned HTTP status code. If the request
// never got a response the status code label is "0".
//
// If the AWS clients retry on error, each attempt counts as a separate sample.
//
// Example:
//
//   sess := session.Must(session.NewSession())
//   InstrumentAWS(&sess.Handlers, prometheus.DefaultRegisterer, "", nil)
//
func InstrumentAWS(h *request.Handlers, reg prometheus.Registerer, namespace string, constLabels map[string]string) error {
	i := newAWSInstrumentation(namespace, constLabels)
	if err := reg.Register(i); err != nil {
		return err
	}
	i.instrument(h)
	return nil
}

type awsInstrumentation struct {
	duration prometheus.ObserverVec
	inflight *prometheus.GaugeVec

	// Collectors are kept apart from duration so tests can swap
	// the ObserverVec for a mock.
	collectors []prometheus.Collector
}

func newAWSInstrumentation(namespace string, constLabels map[string]string) *awsInstrumentation {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "aws",
			Name:        "request_duration_seconds",
			Help:        "A histogram of AWS API request latencies.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{LabelRegion, LabelService, LabelOperation, LabelMethod, LabelStatusCode},
	)
	inflight := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "aws",
		Name:        "in_flight_requests",
		Help:        "A gauge of in-flight AWS API requests.",
		ConstLabels: constLabels,
	}, []string{LabelRegion, LabelService, LabelOperation, LabelMethod})
	return &awsInstrumentation{
		duration:   duration,
		inflight:   inflight,
		collectors: []prometheus.Collector{duration, inflight},
	}
}

func (i *awsInstrumentation) instrument(h *request.Handlers) {
	h.Send.PushFrontNamed(request.NamedHandler{
		Name: "prometheus-send-start",
		Fn:   i.handleSend,
	})
}

// Describe implements prometheus.Collector interface.
func (i *awsInstrumentation) Describe(c chan<- *prometheus.Desc) {
	for _, col := range i.collectors {
		col.Describe(c)
	}
}

// Collect implements prometheus.Collector interface.
func (i *awsInstrumentation) Collect(c chan<- prometheus.Metric) {
	for _, col := range i.collectors {
		col.Collect(c)
	}
}

func (i *awsInstrumentation) handleSend(r *request.Request) {
	labels := prometheus.Labels{
		LabelRegion:    aws.StringValue(r.Config.Region),
		LabelService:   r.ClientInfo.ServiceName,
		LabelOperation: r.Operation.Name,
		LabelMethod:    r.Operation.HTTPMethod,
	}

	timer := NewVecTimer(i.duration)
	i.inflight.With(labels).Inc()

	done := false
	// Send runs once per attempt, so the previous attempt's
	// handler is replaced rather than stacked.
	r.Handlers.CompleteAttempt.SetBackNamed(request.NamedHandler{
		Name: "prometheus-send-end",
		Fn: func(r *request.Request) {
			if done {
				return
			}
			done = true
			i.inflight.With(labels).Dec()
			code := 0
			if r.HTTPResponse != nil {
				code = r.HTTPResponse.StatusCode
			}
			observed := prometheus.Labels{LabelStatusCode: strconv.Itoa(code)}
			for k, v := range labels {
				observed[k] = v
			}
			timer.ObserveWith(observed)
		},
	})
}
