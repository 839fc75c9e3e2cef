package factory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/factory"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

type flakyProcessing struct {
	calls    int
	failures int
}

func (p *flakyProcessing) Process(ctx context.Context, event entity.LifecycleEvent) error {
	p.calls++

	if p.calls <= p.failures {
		return pipeline.NewErrRetryableError(errors.New("flaky"))
	}

	return nil
}

type panicProcessing struct{}

func (panicProcessing) Process(ctx context.Context, event entity.LifecycleEvent) error {
	panic("boom")
}

func TestDecorateProcessing(t *testing.T) {
	t.Parallel()

	conf := config.Reconciler{
		Retry: config.Backoff{MaxAttempt: 3, Delay: time.Millisecond},
	}

	event := entity.LifecycleEvent{
		EnvironmentID:  "e1",
		Operation:      entity.OperationLaunch,
		ReportedStatus: entity.StatusCompleted,
		EventTimestamp: time.Now(),
	}

	t.Run("retries retryable failures", func(t *testing.T) {
		t.Parallel()

		main := &flakyProcessing{failures: 2}

		p, err := factory.DecorateProcessing(main, conf, prometheus.NewRegistry(), clockwork.NewRealClock())
		require.NoError(t, err)

		require.NoError(t, p.Process(context.Background(), event))
		assert.Equal(t, 3, main.calls)
	})

	t.Run("recovers panics", func(t *testing.T) {
		t.Parallel()

		p, err := factory.DecorateProcessing(panicProcessing{}, conf, prometheus.NewRegistry(), clockwork.NewRealClock())
		require.NoError(t, err)

		require.Error(t, p.Process(context.Background(), event))
	})

	t.Run("registers its metrics once", func(t *testing.T) {
		t.Parallel()

		registry := prometheus.NewRegistry()

		_, err := factory.DecorateProcessing(&flakyProcessing{}, conf, registry, clockwork.NewRealClock())
		require.NoError(t, err)

		_, err = factory.DecorateProcessing(&flakyProcessing{}, conf, registry, clockwork.NewRealClock())
		require.Error(t, err, "duplicate registration must fail")
	})
}
