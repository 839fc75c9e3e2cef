package lifecycle

import (
	"context"
	"fmt"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
)

const component = "orchestrator"

// Dependencies are the stores and providers the lifecycle commands act on.
type Dependencies struct {
	Environments repo.Environment
	Projects     repo.ProjectReader
	TypeConfigs  repo.EnvironmentTypeConfigReader
	Accessor     provider.CrossAccountAccessor
	Automation   provider.AutomationInvoker
	Compute      provider.Compute
	DataSets     provider.DataSets
}

// Orchestrator runs the lifecycle commands. Every command returns once the external work is started,
// completion is reported later through lifecycle events. Nothing is retried here.
type Orchestrator struct {
	deps Dependencies
	conf config.Automation
}

func NewOrchestrator(deps Dependencies, conf config.Automation) Orchestrator {
	return Orchestrator{
		deps: deps,
		conf: conf,
	}
}

// Launch starts the provisioning runbook. The caller owns the PENDING write before, and the FAILED write on error.
func (o Orchestrator) Launch(ctx context.Context, env entity.Environment, project entity.Project) (entity.Environment, error) {
	logger := log.ForEnvironment(component, env.ID)

	creds, err := o.assume(ctx, project)
	if err != nil {
		return env, err
	}

	params, err := o.launchParameters(ctx, env, project)
	if err != nil {
		return env, err
	}

	err = o.deps.Automation.Start(ctx, o.conf.LaunchRunbook, creds, params)
	if err != nil {
		return env, fmt.Errorf("failed to start launch runbook: %w", err)
	}

	logger.Info("Launch started", "runbook", o.conf.LaunchRunbook, "projectId", project.ID)

	return env, nil
}

func (o Orchestrator) Terminate(ctx context.Context, environmentID string) (entity.Environment, error) {
	logger := log.ForEnvironment(component, environmentID)

	env, project, err := o.load(ctx, environmentID)
	if err != nil {
		return entity.Environment{}, err
	}

	if env.ProvisionedWorkflowID == "" {
		return env, common.NewPreconditionError("environment %s was never provisioned", environmentID)
	}

	if !entity.CanRequest(entity.OperationTerminate, env.Status) {
		return env, common.NewPreconditionError("environment %s is %s", environmentID, env.Status)
	}

	creds, err := o.assume(ctx, project)
	if err != nil {
		return env, err
	}

	err = o.deps.Automation.Start(ctx, o.conf.TerminateRunbook, creds, terminateParameters(env))
	if err != nil {
		return env, fmt.Errorf("failed to start terminate runbook: %w", err)
	}

	// Data sets may become unreachable once the environment is terminating
	err = o.deps.DataSets.ReleaseAccessPoints(ctx, environmentID)
	if err != nil {
		return env, fmt.Errorf("failed to release access points: %w", err)
	}

	updated, err := o.deps.Environments.UpdateEnvironment(ctx, environmentID, entity.StatusUpdate(entity.StatusTerminating))
	if err != nil {
		return env, fmt.Errorf("failed to mark environment terminating: %w", err)
	}

	logger.Info("Termination started", "runbook", o.conf.TerminateRunbook, "provisionedWorkflowId", env.ProvisionedWorkflowID)

	return updated, nil
}

func (o Orchestrator) Start(ctx context.Context, environmentID string) (entity.Environment, error) {
	return o.toggle(ctx, environmentID, entity.OperationStart)
}

func (o Orchestrator) Stop(ctx context.Context, environmentID string) (entity.Environment, error) {
	return o.toggle(ctx, environmentID, entity.OperationStop)
}

// toggle calls the compute primitive directly, start and stop are synchronous on the provider side.
func (o Orchestrator) toggle(ctx context.Context, environmentID string, operation entity.Operation) (entity.Environment, error) {
	logger := log.ForEnvironment(component, environmentID)

	env, project, err := o.load(ctx, environmentID)
	if err != nil {
		return entity.Environment{}, err
	}

	if env.InstanceIdentifier == "" {
		return env, common.NewPreconditionError("environment %s has no instance", environmentID)
	}

	if !entity.CanRequest(operation, env.Status) {
		return env, common.NewPreconditionError("environment %s is %s", environmentID, env.Status)
	}

	creds, err := o.assume(ctx, project)
	if err != nil {
		return env, err
	}

	status := entity.StatusStarting
	call := o.deps.Compute.StartInstance

	if operation == entity.OperationStop {
		status = entity.StatusStopping
		call = o.deps.Compute.StopInstance
	}

	err = call(ctx, creds, env.InstanceIdentifier)
	if err != nil {
		return env, fmt.Errorf("failed to %s instance: %w", operation, err)
	}

	updated, err := o.deps.Environments.UpdateEnvironment(ctx, environmentID, entity.StatusUpdate(status))
	if err != nil {
		return env, fmt.Errorf("failed to mark environment %s: %w", status, err)
	}

	logger.Info("Instance "+string(operation)+" requested", "instanceId", env.InstanceIdentifier)

	return updated, nil
}

func (o Orchestrator) load(ctx context.Context, environmentID string) (entity.Environment, entity.Project, error) {
	env, err := o.deps.Environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return entity.Environment{}, entity.Project{}, fmt.Errorf("failed to get environment: %w", err)
	}

	project, err := o.deps.Projects.GetProject(ctx, env.ProjectID)
	if err != nil {
		return env, entity.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return env, project, nil
}

func (o Orchestrator) assume(ctx context.Context, project entity.Project) (entity.DelegatedCredentials, error) {
	creds, err := o.deps.Accessor.Assume(ctx, project.RoleArn, o.conf.SessionPrefix, project.ExternalID)
	if err != nil {
		return entity.DelegatedCredentials{}, fmt.Errorf("failed to assume role of project %s: %w", project.ID, err)
	}

	return creds, nil
}
