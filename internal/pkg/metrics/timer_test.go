package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock" // Mocking for tests.

	"github.com/mintel/esconfig/internal/pkg/metrics/mocks"
)

func TestVecTimer_ObserveErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status string
	}{
		{name: "success", status: "success"},
		{name: "error", err: errors.New("describe failed"), status: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec := &mocks.ObserverVec{}
			o := &mocks.Observer{}
			vec.On("With", prometheus.Labels{LabelStatus: tt.status}).Return(o).Once()
			o.On("Observe", mock.AnythingOfType("float64")).Return().Once()

			timer := NewVecTimer(vec)
			d := timer.ObserveErr(tt.err)
			assert.True(t, d >= 0)

			vec.AssertExpectations(t)
			o.AssertExpectations(t)
		})
	}
}

func TestVecTimer_NilVec(t *testing.T) {
	timer := NewVecTimer(nil)
	assert.NotPanics(t, func() {
		timer.ObserveWith(prometheus.Labels{LabelStatus: "success"})
	})
}
