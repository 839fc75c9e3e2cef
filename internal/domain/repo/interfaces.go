package repo

import (
	"context"
	"time"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

//go:generate mockgen -source=interfaces.go -package=mock -destination=./mock/mock_repo.go

type ProcessingErrorWriter interface {
	WriteProcessingError(ctx context.Context, pErr pipeline.ErrProcessingError) error
}

type EnvironmentReader interface {
	GetEnvironment(ctx context.Context, id string) (entity.Environment, error)
}

type EnvironmentWriter interface {
	CreateEnvironment(ctx context.Context, env entity.Environment) (entity.Environment, error)
	// UpdateEnvironment applies the update unconditionally and refreshes UpdatedAt.
	UpdateEnvironment(ctx context.Context, id string, update entity.EnvironmentUpdate) (entity.Environment, error)
	// UpdateEnvironmentIf applies the update only if the stored UpdatedAt still equals expectedUpdatedAt.
	// It fails with common.ErrConflict otherwise.
	UpdateEnvironmentIf(ctx context.Context, id string, expectedUpdatedAt time.Time, update entity.EnvironmentUpdate) (entity.Environment, error)
	// ReinitializeEnvironment puts an existing record back to PENDING and clears provisioning outputs.
	ReinitializeEnvironment(ctx context.Context, id string) (entity.Environment, error)
}

type Environment interface {
	EnvironmentReader
	EnvironmentWriter
}

// InstanceLookup maps provider instance identifiers back to environment ids.
type InstanceLookup interface {
	LookupEnvironmentID(ctx context.Context, instanceID string) (string, error)
	CreateLookup(ctx context.Context, instanceID, environmentID string) error
	DeleteLookup(ctx context.Context, instanceID string) error
}

type ProjectReader interface {
	GetProject(ctx context.Context, id string) (entity.Project, error)
}

type EnvironmentTypeConfigReader interface {
	GetEnvironmentTypeConfig(ctx context.Context, id string) (entity.EnvironmentTypeConfig, error)
}

type DataSetMounts interface {
	GetMounts(ctx context.Context, environmentID string) ([]entity.DataSetMount, error)
	DeleteMounts(ctx context.Context, environmentID string) error
}

type TransitionWriter interface {
	WriteTransition(ctx context.Context, transition entity.Transition) error
}
