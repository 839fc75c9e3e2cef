package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

// CountLateEvents counts the events processed long after they were emitted.
type CountLateEvents struct {
	counter   *prometheus.CounterVec
	lag       *prometheus.HistogramVec
	clock     clockwork.Clock
	threshold time.Duration
	inner     pipeline.Processing[entity.LifecycleEvent]
}

func NewCountLateEvents(p pipeline.Processing[entity.LifecycleEvent], registry prometheus.Registerer, clock clockwork.Clock, threshold time.Duration, config pipeline.MetricsConfig) (pipeline.Processing[entity.LifecycleEvent], error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "late_events_total",
		Help:      "Late lifecycle event counter by operation.",
	}, []string{"operation"})

	lag := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: config.Namespace,
		Name:      "event_delivery_lag_seconds",
		Help:      "Time between the emission of a lifecycle event and the end of its processing.",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 3600},
	}, []string{"operation"})

	for _, c := range []prometheus.Collector{counter, lag} {
		err := registry.Register(c)
		if err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	ret := CountLateEvents{
		counter:   counter,
		lag:       lag,
		clock:     clock,
		threshold: threshold,
		inner:     p,
	}

	return ret, nil
}

func (p CountLateEvents) Process(ctx context.Context, event entity.LifecycleEvent) error {
	err := p.inner.Process(ctx, event)
	if err != nil {
		return err // Count only successfully processed events
	}

	lag := p.computeLag(event)
	operation := string(event.Operation)

	p.lag.WithLabelValues(operation).Observe(lag.Seconds())

	if p.isLate(lag) {
		p.counter.WithLabelValues(operation).Inc()
	}

	return nil
}

// Emitter clocks may run ahead, a negative lag counts as none
func (p CountLateEvents) computeLag(event entity.LifecycleEvent) time.Duration {
	lag := p.clock.Since(event.EventTimestamp)
	if lag < 0 {
		return 0
	}

	return lag
}

func (p CountLateEvents) isLate(lag time.Duration) bool {
	return p.threshold > 0 && lag > p.threshold
}
