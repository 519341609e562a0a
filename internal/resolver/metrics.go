package resolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts resolutions per path. A nil *Metrics records nothing.
type Metrics struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	storeErrors prometheus.Counter
}

// NewMetrics creates the resolver collectors and registers them with reg when
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gems",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Messages resolved, by resolution path.",
		}, []string{"path"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gems",
			Subsystem: "resolver",
			Name:      "resolution_duration_seconds",
			Help:      "Time spent resolving one message, by resolution path.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"path"}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gems",
			Subsystem: "resolver",
			Name:      "dynamic_store_errors_total",
			Help:      "Dynamic catalog reads that failed and fell through to the static engine.",
		}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.resolutions, m.duration, m.storeErrors} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) observe(path Path, started time.Time) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(string(path)).Inc()
	m.duration.WithLabelValues(string(path)).Observe(time.Since(started).Seconds())
}

func (m *Metrics) storeError() {
	if m == nil {
		return
	}
	m.storeErrors.Inc()
}
