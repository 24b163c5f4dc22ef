// Package mocks holds testify mocks of Prometheus interfaces.
package mocks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

// ObserverVec mocks prometheus.ObserverVec. Only With is implemented.
type ObserverVec struct {
	prometheus.ObserverVec
	mock.Mock
}

func (m *ObserverVec) With(labels prometheus.Labels) prometheus.Observer {
	return m.Called(labels).Get(0).(prometheus.Observer)
}

// Observer mocks prometheus.Observer.
type Observer struct {
	mock.Mock
}

func (m *Observer) Observe(v float64) {
	m.Called(v)
}
