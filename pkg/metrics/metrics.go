package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ktustanowski/durationreporter/pkg/durationreporter"
)

const (
	namespace   = "duration_reporter"
	labelEvent  = "event"
	labelAction = "action"
)

var (
	Registry     = prometheus.NewRegistry()
	ActionsBegun = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_begun_total",
		Help:      "Number of actions begun.",
	}, []string{labelEvent})

	ActionsEnded = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_ended_total",
		Help:      "Number of actions ended.",
	}, []string{labelEvent})

	ActionsRunning = promauto.With(Registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "actions_running",
		Help:      "Number of actions begun but not yet ended.",
	}, []string{labelEvent})

	ActionDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of completed actions in seconds.",
		Buckets:   prometheus.ExponentialBucketsRange(0.001, 300, 25),
	}, []string{labelEvent, labelAction})
)

// Observe forwards begin, end and discard notifications of r to the collectors above. It
// replaces any observers already set on r.
//
// The action label uses the action name, not the suffixed title, so repeated actions share a
// series.
func Observe(r *durationreporter.Reporter) {
	r.OnBegin(func(event string, _ durationreporter.Action) {
		ActionsBegun.WithLabelValues(event).Inc()
		ActionsRunning.WithLabelValues(event).Inc()
	})
	r.OnEnd(func(event string, action durationreporter.Action) {
		ActionsEnded.WithLabelValues(event).Inc()
		ActionsRunning.WithLabelValues(event).Dec()
		if d, ok := action.Duration(); ok {
			ActionDuration.WithLabelValues(event, action.Name).Observe(d.Seconds())
		}
	})
	r.OnDiscard(func(event string, _ durationreporter.Action) {
		ActionsRunning.WithLabelValues(event).Dec()
	})
}
