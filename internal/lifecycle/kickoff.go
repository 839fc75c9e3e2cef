package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/log"
)

// Prepare is the first phase of a launch: it records the environment as PENDING.
// A terminated or failed environment is re-initialized so its id can be launched again.
func (o Orchestrator) Prepare(ctx context.Context, env entity.Environment) (entity.Environment, error) {
	logger := log.ForEnvironment(component, env.ID)

	existing, err := o.deps.Environments.GetEnvironment(ctx, env.ID)

	switch {
	case errors.Is(err, common.ErrNotFound):
		env.Status = entity.StatusPending
		env.InstanceIdentifier = ""
		env.InstanceArn = ""
		env.ProvisionedWorkflowID = ""
		env.Error = nil

		created, err := o.deps.Environments.CreateEnvironment(ctx, env)
		if err != nil {
			return env, fmt.Errorf("failed to create environment: %w", err)
		}

		logger.V(1).Info("Environment created")

		return created, nil
	case err != nil:
		return env, fmt.Errorf("failed to get environment: %w", err)
	}

	if !existing.Status.IsRelaunchable() {
		return existing, common.NewPreconditionError("environment %s is %s", env.ID, existing.Status)
	}

	// A relaunch keeps the owner and the type of the environment
	if existing.ProjectID != env.ProjectID ||
		existing.EnvironmentTypeID != env.EnvironmentTypeID ||
		existing.EnvironmentTypeConfigID != env.EnvironmentTypeConfigID {
		return existing, common.NewPreconditionError("environment %s belongs to project %s with type %s/%s",
			env.ID, existing.ProjectID, existing.EnvironmentTypeID, existing.EnvironmentTypeConfigID)
	}

	reinitialized, err := o.deps.Environments.ReinitializeEnvironment(ctx, env.ID)
	if err != nil {
		return existing, fmt.Errorf("failed to reinitialize environment: %w", err)
	}

	logger.Info("Environment reinitialized", "previousStatus", existing.Status)

	return reinitialized, nil
}

// Kickoff is the second phase of a launch. A failure leaves the environment FAILED with a LAUNCH error
// instead of an orphaned PENDING record. The launch error is returned in every case.
func (o Orchestrator) Kickoff(ctx context.Context, env entity.Environment, project entity.Project) (entity.Environment, error) {
	logger := log.ForEnvironment(component, env.ID)

	launched, err := o.Launch(ctx, env, project)
	if err == nil {
		return launched, nil
	}

	logger.Error(err, "Launch failed")

	failed, updateErr := o.deps.Environments.UpdateEnvironment(ctx, env.ID, entity.FailedUpdate(entity.ErrorTypeLaunch, err.Error()))
	if updateErr != nil {
		return env, errors.Join(err, fmt.Errorf("failed to mark environment failed: %w", updateErr))
	}

	return failed, err
}
