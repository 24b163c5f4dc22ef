package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// VecTimer is a helper type to time functions.
// It is similar to prometheus.Timer, but takes a prometheus.ObserverVec,
// and adds labels to it when the VecTimer is observed.
type VecTimer struct {
	begin time.Time
	vec   prometheus.ObserverVec
}

// NewVecTimer creates a new VecTimer. Typical use:
//
//    timer := NewVecTimer(pollDuration)
//    err := poll()
//    timer.ObserveErr(err)
//
func NewVecTimer(v prometheus.ObserverVec) *VecTimer {
	return &VecTimer{
		begin: time.Now(),
		vec:   v,
	}
}

// ObserveWith records the seconds passed since the VecTimer was created
// on the Observer derived from labels, and returns the duration.
func (t *VecTimer) ObserveWith(labels prometheus.Labels) time.Duration {
	d := time.Since(t.begin)
	if t.vec != nil {
		t.vec.With(labels).Observe(d.Seconds())
	}
	return d
}

// ObserveErr is ObserveWith with LabelStatus set to "success" or
// "error" depending on err.
func (t *VecTimer) ObserveErr(err error) time.Duration {
	return t.ObserveWith(prometheus.Labels{LabelStatus: Status(err)})
}
