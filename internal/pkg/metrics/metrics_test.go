package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countMetrics returns the number of metrics gathered from g.
func countMetrics(t *testing.T, g prometheus.Gatherer) int {
	mfs, err := g.Gather()
	require.NoError(t, err, "error while gathering metric families")
	var count int
	for _, mf := range mfs {
		count += len(mf.Metric)
		for _, m := range mf.Metric {
			t.Log(mf.GetName(), m.String())
		}
	}
	return count
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "success", Status(nil))
	assert.Equal(t, "error", Status(errors.New("throttled")))
}
