// Package metrics holds constants and utilities for instrumenting the
// esconfig apps with Prometheus metrics.
package metrics

// Values of LabelStatus.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Status returns the LabelStatus value for the outcome err.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
