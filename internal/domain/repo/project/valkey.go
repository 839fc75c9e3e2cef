package project

import (
	"context"
	"encoding/json"

	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
)

const (
	projectKeyPrefix    = "project:"
	typeConfigKeyPrefix = "envtypeconfig:"
)

// ValkeyRepo reads projects and environment type configurations, stored as json documents.
type ValkeyRepo struct {
	client valkey.Client
}

func NewValkeyRepo(client valkey.Client) ValkeyRepo {
	return ValkeyRepo{client: client}
}

func (r ValkeyRepo) GetProject(ctx context.Context, id string) (entity.Project, error) {
	ret := entity.Project{}

	err := r.get(ctx, "project", projectKeyPrefix+id, id, &ret)

	return ret, err
}

func (r ValkeyRepo) SaveProject(ctx context.Context, project entity.Project) error {
	return r.set(ctx, "project", projectKeyPrefix+project.ID, project.ID, project)
}

func (r ValkeyRepo) GetEnvironmentTypeConfig(ctx context.Context, id string) (entity.EnvironmentTypeConfig, error) {
	ret := entity.EnvironmentTypeConfig{}

	err := r.get(ctx, "environment type config", typeConfigKeyPrefix+id, id, &ret)

	return ret, err
}

func (r ValkeyRepo) SaveEnvironmentTypeConfig(ctx context.Context, typeConfig entity.EnvironmentTypeConfig) error {
	return r.set(ctx, "environment type config", typeConfigKeyPrefix+typeConfig.ID, typeConfig.ID, typeConfig)
}

func (r ValkeyRepo) get(ctx context.Context, kind, key, id string, out interface{}) error {
	command := r.client.B().Get().Key(key).Build()

	b, err := r.client.Do(ctx, command).AsBytes()
	if valkey.IsValkeyNil(err) {
		return common.NewNotFoundError(kind, id)
	}

	if err != nil {
		return repo.NewValkeyClientError(err, "failed to get %s %s", kind, id)
	}

	err = json.Unmarshal(b, out)
	if err != nil {
		return common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "failed to unmarshal %s %s", kind, id)
	}

	return nil
}

func (r ValkeyRepo) set(ctx context.Context, kind, key, id string, in interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "failed to marshal %s %s", kind, id)
	}

	command := r.client.B().Set().Key(key).Value(valkey.BinaryString(b)).Build()

	err = r.client.Do(ctx, command).Error()
	if err != nil {
		return repo.NewValkeyClientError(err, "failed to save %s %s", kind, id)
	}

	return nil
}
