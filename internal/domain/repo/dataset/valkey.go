package dataset

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
)

const keyPrefix = "datasets:"

// ValkeyRepo keeps the data set mounts of an environment in a hash, one json field per data set.
type ValkeyRepo struct {
	client valkey.Client
}

func NewValkeyRepo(client valkey.Client) ValkeyRepo {
	return ValkeyRepo{client: client}
}

// GetMounts returns the mounts sorted by data set id. An environment without mount returns an empty slice.
func (r ValkeyRepo) GetMounts(ctx context.Context, environmentID string) ([]entity.DataSetMount, error) {
	command := r.client.B().Hgetall().Key(key(environmentID)).Build()

	fields, err := r.client.Do(ctx, command).AsStrMap()
	if err != nil {
		return nil, repo.NewValkeyClientError(err, "failed to get mounts of environment %s", environmentID)
	}

	ret := make([]entity.DataSetMount, 0, len(fields))

	for id, raw := range fields {
		mount := entity.DataSetMount{}

		err = json.Unmarshal([]byte(raw), &mount)
		if err != nil {
			return nil, common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "failed to unmarshal mount %s of environment %s", id, environmentID)
		}

		ret = append(ret, mount)
	}

	sort.Slice(ret, func(i, j int) bool {
		return ret[i].ID < ret[j].ID
	})

	return ret, nil
}

func (r ValkeyRepo) SaveMount(ctx context.Context, environmentID string, mount entity.DataSetMount) error {
	b, err := json.Marshal(mount)
	if err != nil {
		return common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "failed to marshal mount %s", mount.ID)
	}

	command := r.client.B().Hset().Key(key(environmentID)).FieldValue().FieldValue(mount.ID, string(b)).Build()

	err = r.client.Do(ctx, command).Error()
	if err != nil {
		return repo.NewValkeyClientError(err, "failed to save mount %s of environment %s", mount.ID, environmentID)
	}

	return nil
}

func (r ValkeyRepo) DeleteMounts(ctx context.Context, environmentID string) error {
	command := r.client.B().Del().Key(key(environmentID)).Build()

	err := r.client.Do(ctx, command).Error()
	if err != nil {
		return repo.NewValkeyClientError(err, "failed to delete mounts of environment %s", environmentID)
	}

	return nil
}

func key(environmentID string) string {
	return keyPrefix + environmentID
}
