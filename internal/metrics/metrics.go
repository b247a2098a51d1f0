// Package metrics exports engine activity as Prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vcrobe/nojs-classroom/runtime"
)

var _ runtime.Observer = (*Observer)(nil)

// Observer counts renders, patches, events and state updates.
type Observer struct {
	renders       *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	patches       *prometheus.CounterVec
	events        *prometheus.CounterVec
	updates       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nojs_renders_total",
				Help: "Completed render cycles per root component",
			},
			[]string{"component"},
		),
		renderSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nojs_render_duration_seconds",
				Help:    "Time spent in one render cycle",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
			[]string{"component"},
		),
		patches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nojs_patches_total",
				Help: "Patches sent to surfaces",
			},
			[]string{"component"},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nojs_events_total",
				Help: "Dispatched events by type and outcome",
			},
			[]string{"type", "result"},
		),
		updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nojs_state_updates_total",
				Help: "State slot writes",
			},
			[]string{"slot"},
		),
	}
	for _, c := range []prometheus.Collector{o.renders, o.renderSeconds, o.patches, o.events, o.updates} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Observer) RenderCompleted(component string, elapsed time.Duration, patches int) {
	o.renders.WithLabelValues(component).Inc()
	o.renderSeconds.WithLabelValues(component).Observe(elapsed.Seconds())
	o.patches.WithLabelValues(component).Add(float64(patches))
}

func (o *Observer) EventHandled(ev runtime.Event, err error) {
	o.events.WithLabelValues(eventType(ev.Type), result(err)).Inc()
}

// eventType folds client-supplied event names into a fixed label set.
func eventType(t string) string {
	switch t {
	case "click", "change":
		return t
	default:
		return "other"
	}
}

func (o *Observer) StateUpdated(u runtime.Update) {
	o.updates.WithLabelValues(u.Slot).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, runtime.ErrNoTarget):
		return "no_target"
	case errors.Is(err, runtime.ErrNoHandler):
		return "no_handler"
	default:
		return "error"
	}
}
