package cmd

import (
	"sync"

	"github.com/heptiolabs/healthcheck"              // Healthchecks framework.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
)

// NewHealthchecksHandler returns a new healthcheck.Handler with an
// always passing liveness check. Check results are exported as
// Prometheus metrics under the app's namespace.
func NewHealthchecksHandler(r prometheus.Registerer, appName string) healthcheck.Handler {
	h := healthcheck.NewMetricsHandler(r, BuildPromFQName("", appName))
	h.AddLivenessCheck("alive", func() error { return nil })
	return h
}

// StatusCheck is a healthcheck.Check whose result is set by the app.
// It is safe for concurrent use.
type StatusCheck struct {
	mu  sync.RWMutex
	err error
}

// NewStatusCheck returns a StatusCheck failing with err until Set.
func NewStatusCheck(err error) *StatusCheck {
	return &StatusCheck{err: err}
}

// Set the result of the check.
func (c *StatusCheck) Set(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// Check implements healthcheck.Check.
func (c *StatusCheck) Check() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}
