package reconciler

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

type CountEvents struct {
	counter *prometheus.CounterVec
	inner   pipeline.Processing[entity.LifecycleEvent]
}

func NewCountEvents(p pipeline.Processing[entity.LifecycleEvent], registry prometheus.Registerer, config pipeline.MetricsConfig) (pipeline.Processing[entity.LifecycleEvent], error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.Namespace,
		Name:      "events_total",
		Help:      "Lifecycle event counter by operation and reported status.",
	}, []string{"operation", "status"})

	err := registry.Register(counter)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric: %w", err)
	}

	ret := CountEvents{
		counter: counter,
		inner:   p,
	}

	return ret, nil
}

func (p CountEvents) Process(ctx context.Context, event entity.LifecycleEvent) error {
	defer p.counter.WithLabelValues(string(event.Operation), statusLabel(event.ReportedStatus)).Inc()

	return p.inner.Process(ctx, event)
}

// Unknown statuses are folded to keep the label cardinality bounded
func statusLabel(status entity.Status) string {
	if !status.IsValid() {
		return "unknown"
	}

	return string(status)
}
