package cmd

import (
	"net/http"

	"github.com/heptiolabs/healthcheck"              // Healthchecks framework.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
)

// MonitoringFlags represents a set of flags for setting up
// logging, healthchecks, and Prometheus metrics together, as needed
// by long-running apps.
type MonitoringFlags struct {
	*LoggingFlags
	*ServerFlags
}

// NewMonitoringFlags returns a new MonitoringFlags.
func NewMonitoringFlags(app Flagger, port int, logLevel string) *MonitoringFlags {
	return &MonitoringFlags{
		LoggingFlags: NewLoggingFlags(app, logLevel),
		ServerFlags:  NewServerFlags(app, port),
	}
}

// NewMonitoringServer returns an HTTP server serving healthchecks from h
// and Prometheus metrics gathered from g.
func (f *MonitoringFlags) NewMonitoringServer(h healthcheck.Handler, g prometheus.Gatherer) *http.Server {
	mux := f.ConfigureMux(http.NewServeMux(), h, g)
	return f.NewServer(mux)
}
