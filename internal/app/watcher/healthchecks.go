package watcher

import (
	"github.com/heptiolabs/healthcheck"              // Healthchecks framework.
	"github.com/pkg/errors"                          // Wrap errors with stacktrace.
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/mintel/esconfig/internal/pkg/cmd"
)

var (
	errNoSession = errors.New("AWS session not yet ready")
	errNotPolled = errors.New("domains not yet polled")
)

// Healthchecks holds the watcher's liveness and readiness checks.
// The watcher is ready once a session to AWS is created and
// the last poll succeeded.
type Healthchecks struct {
	Handler healthcheck.Handler

	session *cmd.StatusCheck
	poll    *cmd.StatusCheck
}

// NewHealthchecks returns a new Healthchecks.
func NewHealthchecks(r prometheus.Registerer, appName string) *Healthchecks {
	h := &Healthchecks{
		Handler: cmd.NewHealthchecksHandler(r, appName),
		session: cmd.NewStatusCheck(errNoSession),
		poll:    cmd.NewStatusCheck(errNotPolled),
	}
	h.Handler.AddReadinessCheck("aws-session", h.session.Check)
	h.Handler.AddReadinessCheck("poll", h.poll.Check)
	return h
}

// SetSessionCreated marks the AWS session as ready.
func (h *Healthchecks) SetSessionCreated() {
	h.session.Set(nil)
}

// SetPollResult records the outcome of the latest poll.
func (h *Healthchecks) SetPollResult(err error) {
	if err != nil {
		err = errors.Wrap(err, "last poll failed")
	}
	h.poll.Set(err)
}
