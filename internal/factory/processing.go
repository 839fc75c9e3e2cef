package factory

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/reconciler"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

/*
 * DecorateProcessing decorates the processing as follow:
 *
 * panic --> duration --> count --> late --> retry --> main (reconciler)
 */
func DecorateProcessing(mainProcessing pipeline.Processing[entity.LifecycleEvent], conf config.Reconciler, registry prometheus.Registerer, clock clockwork.Clock) (pipeline.Processing[entity.LifecycleEvent], error) {
	ret := mainProcessing

	ret = pipeline.NewRetryProcessing(ret, pipeline.RetryConfig{
		MaxAttempt: conf.Retry.MaxAttempt,
		Delay:      conf.Retry.Delay,
		MaxDelay:   conf.Retry.MaxDelay,
	})

	ret, err := reconciler.NewCountLateEvents(ret, registry, clock, conf.LateThreshold, pipeline.MetricsConfig{Namespace: "main"})
	if err != nil {
		return nil, fmt.Errorf("failed to create late events processor: %w", err)
	}

	ret, err = reconciler.NewCountEvents(ret, registry, pipeline.MetricsConfig{Namespace: "main"})
	if err != nil {
		return nil, fmt.Errorf("failed to create count events processor: %w", err)
	}

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clock, pipeline.MetricsConfig{Namespace: "main"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}

/*
 * DecorateErrorProcessing decorates the error processing as follow:
 *
 *										---> retry --> main (dlq)
 *	panic --> duration --> parallel ---|
 *										---> error count
 */
func DecorateErrorProcessing(mainProcessing pipeline.ErrorProcessing, conf config.Reconciler, registry prometheus.Registerer, clock clockwork.Clock) (pipeline.ErrorProcessing, error) {
	ret := mainProcessing

	ret = pipeline.NewRetryProcessing(ret, pipeline.RetryConfig{
		MaxAttempt: conf.Retry.MaxAttempt,
		Delay:      conf.Retry.Delay,
		MaxDelay:   conf.Retry.MaxDelay,
	})

	errorCount, err := pipeline.NewErrorCountProcessing(registry, pipeline.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create error count processing: %w", err)
	}

	ret = pipeline.NewParallelProcessing(ret, errorCount)

	ret, err = pipeline.NewDurationMetricsDecoratorProcessing(ret, registry, clock, pipeline.MetricsConfig{Namespace: "error"})
	if err != nil {
		return nil, fmt.Errorf("failed to create duration metrics processor: %w", err)
	}

	ret = pipeline.NewPanicHandlerProcessing(ret)

	return ret, nil
}
