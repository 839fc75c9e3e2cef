package reconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

const (
	component = "reconciler"

	categoryConflict = "reconciler_conflict"
)

// Outcome is what the reconciler decided for an event, exported as a metric label.
type Outcome string

const (
	OutcomeApplied       Outcome = "applied"
	OutcomeStale         Outcome = "stale"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeUnknownStatus Outcome = "unknown_status"
	OutcomeUntracked     Outcome = "untracked"
	OutcomeIllegal       Outcome = "illegal"
	// OutcomeConflicting is an applied status whose launch ids disagree with the record. The record ids are kept.
	OutcomeConflicting Outcome = "conflicting"
	// OutcomeIncomplete is an applied launch status whose instance outputs could not be resolved.
	OutcomeIncomplete Outcome = "incomplete"
)

func (o Outcome) writesRecord() bool {
	return o == OutcomeApplied || o == OutcomeConflicting || o == OutcomeIncomplete
}

// Dependencies are the stores and providers the reconciler reads and writes.
type Dependencies struct {
	Environments repo.Environment
	Lookup       repo.InstanceLookup
	Projects     repo.ProjectReader
	Accessor     provider.CrossAccountAccessor
	Outputs      provider.ExecutionOutputsReader
	History      repo.TransitionWriter
}

// Reconciler applies lifecycle events to environment records. Events may arrive late, twice or out of order:
// only events emitted after the last update of the record are applied, and only along the lifecycle edges.
type Reconciler struct {
	deps          Dependencies
	conf          config.Reconciler
	sessionPrefix string

	outcomes *prometheus.CounterVec
}

func NewReconciler(deps Dependencies, conf config.Reconciler, sessionPrefix string, registry prometheus.Registerer, metrics pipeline.MetricsConfig) (Reconciler, error) {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Name:      "event_outcome_total",
		Help:      "Lifecycle event counter by operation and outcome.",
	}, []string{"operation", "outcome"})

	err := registry.Register(outcomes)
	if err != nil {
		return Reconciler{}, fmt.Errorf("failed to register metric: %w", err)
	}

	if conf.Conflict.MaxAttempt == 0 {
		conf.Conflict.MaxAttempt = 1
	}

	return Reconciler{
		deps:          deps,
		conf:          conf,
		sessionPrefix: sessionPrefix,
		outcomes:      outcomes,
	}, nil
}

func (r Reconciler) Process(ctx context.Context, event entity.LifecycleEvent) error {
	return r.Execute(ctx, event)
}

// Execute swallows the events it decides to drop. Every other failure is returned so the event gets redelivered.
func (r Reconciler) Execute(ctx context.Context, event entity.LifecycleEvent) error {
	outcome, err := r.execute(ctx, event)
	if err != nil {
		return err
	}

	r.outcomes.WithLabelValues(string(event.Operation), string(outcome)).Inc()

	return nil
}

func (r Reconciler) execute(ctx context.Context, event entity.LifecycleEvent) (Outcome, error) {
	logger := log.Logger().WithName(component).WithValues(
		"operation", event.Operation,
		"reportedStatus", event.ReportedStatus,
		"eventTimestamp", event.EventTimestamp,
	)

	if !event.ReportedStatus.IsValid() {
		logger.Info("Dropping event with unknown status")

		return OutcomeUnknownStatus, nil
	}

	environmentID, err := r.resolveEnvironmentID(ctx, event)
	if errors.Is(err, common.ErrNotFound) {
		logger.V(1).Info("Dropping event of an untracked resource", "instanceIdentifier", event.InstanceIdentifier)

		return OutcomeUntracked, nil
	}

	if err != nil {
		return "", err
	}

	logger = logger.WithValues("environmentId", environmentID)

	a := attempt{Reconciler: r, logger: logger, event: event}

	err = retry.Do(
		func() error {
			return a.run(ctx, environmentID)
		},
		retry.Context(ctx),
		retry.Attempts(r.conf.Conflict.MaxAttempt),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, common.ErrConflict)
		}),
		retry.Delay(r.conf.Conflict.Delay),
		retry.MaxDelay(r.conf.Conflict.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if errors.Is(err, common.ErrConflict) {
		return "", common.NewRetryableErrProcessingError(err, categoryConflict, nil, "environment %s kept moving", environmentID)
	}

	if err != nil {
		return "", err
	}

	if !a.outcome.writesRecord() && a.outcome != OutcomeDuplicate {
		return a.outcome, nil
	}

	err = r.settleLookup(ctx, a.result)
	if err != nil {
		return "", err
	}

	if a.outcome != OutcomeDuplicate {
		r.recordTransition(ctx, logger, event, a.previous, a.result)
	}

	return a.outcome, nil
}

func (r Reconciler) resolveEnvironmentID(ctx context.Context, event entity.LifecycleEvent) (string, error) {
	if event.EnvironmentID != "" {
		return event.EnvironmentID, nil
	}

	if event.InstanceIdentifier == "" {
		return "", common.NewNotFoundError("instance", "")
	}

	return r.deps.Lookup.LookupEnvironmentID(ctx, event.InstanceIdentifier)
}

// settleLookup keeps the reciprocal lookup in line with the record: created once an instance is known,
// removed once the environment is terminated. Both calls are idempotent so a redelivered event repairs them.
func (r Reconciler) settleLookup(ctx context.Context, env entity.Environment) error {
	if env.InstanceIdentifier == "" {
		return nil
	}

	if env.Status == entity.StatusTerminated {
		err := r.deps.Lookup.DeleteLookup(ctx, env.InstanceIdentifier)
		if err != nil {
			return fmt.Errorf("failed to delete lookup of instance %s: %w", env.InstanceIdentifier, err)
		}

		return nil
	}

	err := r.deps.Lookup.CreateLookup(ctx, env.InstanceIdentifier, env.ID)
	if err != nil {
		return fmt.Errorf("failed to create lookup of instance %s: %w", env.InstanceIdentifier, err)
	}

	return nil
}

// History is an audit trail, losing a record must not block the lifecycle.
func (r Reconciler) recordTransition(ctx context.Context, logger logr.Logger, event entity.LifecycleEvent, previous, current entity.Environment) {
	transition := entity.Transition{
		EnvironmentID:  current.ID,
		Operation:      event.Operation,
		From:           previous.Status,
		To:             current.Status,
		EventTimestamp: event.EventTimestamp,
		AppliedAt:      current.UpdatedAt,
	}

	err := r.deps.History.WriteTransition(ctx, transition)
	if err != nil {
		logger.Error(err, "Failed to record transition")
	}
}
