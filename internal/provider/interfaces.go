package provider

import (
	"context"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_provider.go

// CrossAccountAccessor exchanges the caller identity for short-lived credentials in a target account.
type CrossAccountAccessor interface {
	Assume(ctx context.Context, roleArn, sessionNamePrefix, externalID string) (entity.DelegatedCredentials, error)
}

// AutomationInvoker starts a runbook and returns as soon as the execution is accepted.
type AutomationInvoker interface {
	Start(ctx context.Context, runbookName string, creds entity.DelegatedCredentials, parameters map[string]string) error
}

// ExecutionOutputsReader reads the outputs of a finished runbook execution.
type ExecutionOutputsReader interface {
	GetOutputs(ctx context.Context, creds entity.DelegatedCredentials, executionID string) (entity.WorkflowOutputs, error)
}

type Compute interface {
	StartInstance(ctx context.Context, creds entity.DelegatedCredentials, instanceID string) error
	StopInstance(ctx context.Context, creds entity.DelegatedCredentials, instanceID string) error
}

// DataSets gives access to the data sets mounted in an environment.
type DataSets interface {
	Descriptors(ctx context.Context, environmentID string) ([]entity.DataSetMount, error)
	ReleaseAccessPoints(ctx context.Context, environmentID string) error
}
