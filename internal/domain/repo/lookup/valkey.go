package lookup

import (
	"context"

	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
)

const keyPrefix = "instance:"

// ValkeyRepo stores the instance identifier to environment id mapping used by the reconciler
// when a lifecycle event only carries the instance identifier.
type ValkeyRepo struct {
	client valkey.Client
}

func NewValkeyRepo(client valkey.Client) ValkeyRepo {
	return ValkeyRepo{client: client}
}

func (r ValkeyRepo) LookupEnvironmentID(ctx context.Context, instanceID string) (string, error) {
	command := r.client.B().Get().Key(key(instanceID)).Build()

	ret, err := r.client.Do(ctx, command).ToString()
	if valkey.IsValkeyNil(err) {
		return "", common.NewNotFoundError("instance", instanceID)
	}

	if err != nil {
		return "", repo.NewValkeyClientError(err, "failed to lookup instance %s", instanceID)
	}

	return ret, nil
}

// CreateLookup is idempotent for the same pair. Mapping an instance to another environment fails with common.ErrConflict.
func (r ValkeyRepo) CreateLookup(ctx context.Context, instanceID, environmentID string) error {
	command := r.client.B().Set().Key(key(instanceID)).Value(environmentID).Nx().Build()

	err := r.client.Do(ctx, command).Error()
	if err == nil {
		return nil
	}

	if !valkey.IsValkeyNil(err) {
		return repo.NewValkeyClientError(err, "failed to create lookup for instance %s", instanceID)
	}

	// Key already there
	existing, err := r.LookupEnvironmentID(ctx, instanceID)
	if err != nil {
		return err
	}

	if existing != environmentID {
		return common.NewErrProcessingError(common.ErrConflict, repo.CategoryValkeyClientError, nil,
			"instance %s already mapped to environment %s", instanceID, existing)
	}

	return nil
}

func (r ValkeyRepo) DeleteLookup(ctx context.Context, instanceID string) error {
	command := r.client.B().Del().Key(key(instanceID)).Build()

	err := r.client.Do(ctx, command).Error()
	if err != nil {
		return repo.NewValkeyClientError(err, "failed to delete lookup for instance %s", instanceID)
	}

	return nil
}

func key(instanceID string) string {
	return keyPrefix + instanceID
}
