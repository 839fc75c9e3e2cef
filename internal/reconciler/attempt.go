package reconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

// attempt is one read then conditional write of the record. It is run again when the write loses the race.
type attempt struct {
	Reconciler

	logger logr.Logger
	event  entity.LifecycleEvent

	// Resolved once, kept across attempts
	outputs    *entity.WorkflowOutputs
	outputsErr error

	outcome  Outcome
	previous entity.Environment
	result   entity.Environment
}

func (a *attempt) run(ctx context.Context, environmentID string) error {
	env, err := a.deps.Environments.GetEnvironment(ctx, environmentID)
	if errors.Is(err, common.ErrNotFound) {
		a.logger.V(1).Info("Dropping event of an unknown environment")
		a.outcome = OutcomeUntracked

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get environment: %w", err)
	}

	a.previous = env
	a.result = env

	// Last writer wins by emission time
	if env.UpdatedAt.After(a.event.EventTimestamp) {
		a.logger.V(1).Info("Dropping stale event", "updatedAt", env.UpdatedAt)
		a.outcome = OutcomeStale

		return nil
	}

	if env.Status == a.event.ReportedStatus {
		a.logger.V(2).Info("Duplicate event")
		a.outcome = OutcomeDuplicate

		return nil
	}

	if !entity.CanReconcile(a.event.Operation, env.Status, a.event.ReportedStatus) {
		a.logger.Info("Dropping illegal transition", "currentStatus", env.Status)
		a.outcome = OutcomeIllegal

		return nil
	}

	update := entity.StatusUpdate(a.event.ReportedStatus)
	outcome := OutcomeApplied

	if a.event.Operation == entity.OperationLaunch {
		conflicting, err := a.enrichLaunch(ctx, env, &update)

		switch {
		case err != nil && isTransient(err):
			return err
		case err != nil:
			// The reported status stands without the outputs
			a.logger.Error(err, "Applying status without launch outputs")
			outcome = OutcomeIncomplete
		case conflicting:
			outcome = OutcomeConflicting
		}
	}

	updated, err := a.deps.Environments.UpdateEnvironmentIf(ctx, env.ID, env.UpdatedAt, update)
	if err != nil {
		return fmt.Errorf("failed to apply status: %w", err)
	}

	a.logger.Info("Status applied", "from", env.Status, "to", updated.Status)

	a.outcome = outcome
	a.result = updated

	return nil
}

// enrichLaunch adds the launch ids to the update. Ids already on the record are never overwritten.
func (a *attempt) enrichLaunch(ctx context.Context, env entity.Environment, update *entity.EnvironmentUpdate) (bool, error) {
	payload, _ := a.event.Payload.(entity.LaunchPayload)

	executionID := payload.ExecutionID
	if executionID == "" {
		a.logger.Info("Launch event without execution id")

		return false, nil
	}

	if env.ProvisionedWorkflowID != "" && env.ProvisionedWorkflowID != executionID {
		a.logger.Info("Keeping the launch ids of the record",
			"provisionedWorkflowId", env.ProvisionedWorkflowID,
			"executionId", executionID,
		)

		return true, nil
	}

	if env.ProvisionedWorkflowID == "" {
		update.ProvisionedWorkflowID = &executionID
	}

	if env.InstanceIdentifier != "" || !providesOutputs(a.event.ReportedStatus) {
		return false, nil
	}

	outputs, err := a.workflowOutputs(ctx, env, executionID)
	if err != nil {
		return false, err
	}

	update.InstanceIdentifier = &outputs.InstanceID

	if outputs.InstanceArn != "" {
		update.InstanceArn = &outputs.InstanceArn
	}

	return false, nil
}

func (a *attempt) workflowOutputs(ctx context.Context, env entity.Environment, executionID string) (entity.WorkflowOutputs, error) {
	if a.outputs != nil {
		return *a.outputs, nil
	}

	if a.outputsErr != nil {
		return entity.WorkflowOutputs{}, a.outputsErr
	}

	outputs, err := a.readOutputs(ctx, env, executionID)
	if err != nil {
		if !isTransient(err) {
			a.outputsErr = err
		}

		return entity.WorkflowOutputs{}, err
	}

	a.outputs = &outputs

	return outputs, nil
}

func (a *attempt) readOutputs(ctx context.Context, env entity.Environment, executionID string) (entity.WorkflowOutputs, error) {
	project, err := a.deps.Projects.GetProject(ctx, env.ProjectID)
	if err != nil {
		return entity.WorkflowOutputs{}, fmt.Errorf("failed to get project: %w", err)
	}

	creds, err := a.deps.Accessor.Assume(ctx, project.RoleArn, a.sessionPrefix, project.ExternalID)
	if err != nil {
		return entity.WorkflowOutputs{}, fmt.Errorf("failed to assume role of project %s: %w", project.ID, err)
	}

	outputs, err := a.deps.Outputs.GetOutputs(ctx, creds, executionID)
	if err != nil {
		return entity.WorkflowOutputs{}, fmt.Errorf("failed to get outputs of execution %s: %w", executionID, err)
	}

	return outputs, nil
}

// Transient failures are redelivered, anything else will fail the same way next time
func isTransient(err error) bool {
	return errors.Is(err, pipeline.ErrRetryableError) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Only a settled launch has an instance to report
func providesOutputs(status entity.Status) bool {
	return status == entity.StatusCompleted || status == entity.StatusStarted
}
