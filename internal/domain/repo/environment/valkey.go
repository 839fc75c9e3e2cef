package environment

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
)

const (
	keyPrefix = "environment:"

	replyExists   = "EXISTS"
	replyNotFound = "NOTFOUND"
	replyConflict = "CONFLICT"
)

var createScript = valkey.NewLuaScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return redis.error_reply('EXISTS')
end
redis.call('HSET', KEYS[1], unpack(ARGV))
return redis.call('HGETALL', KEYS[1])
`)

// ARGV[1] is the expected updatedAt, empty for an unconditional update.
var updateScript = valkey.NewLuaScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return redis.error_reply('NOTFOUND')
end
if ARGV[1] ~= '' and redis.call('HGET', KEYS[1], 'updatedAt') ~= ARGV[1] then
  return redis.error_reply('CONFLICT')
end
redis.call('HSET', KEYS[1], unpack(ARGV, 2))
return redis.call('HGETALL', KEYS[1])
`)

type ValkeyRepo struct {
	client valkey.Client
	clock  clockwork.Clock
}

func NewValkeyRepo(client valkey.Client, clock clockwork.Clock) ValkeyRepo {
	return ValkeyRepo{
		client: client,
		clock:  clock,
	}
}

func (r ValkeyRepo) GetEnvironment(ctx context.Context, id string) (entity.Environment, error) {
	command := r.client.B().Hgetall().Key(key(id)).Build()

	resp := r.client.Do(ctx, command)

	err := resp.Error()
	if err != nil {
		return entity.Environment{}, repo.NewValkeyClientError(err, "failed to get environment %s", id)
	}

	fields, err := resp.AsStrMap()
	if err != nil {
		return entity.Environment{}, common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "unexpected hgetall response type for %s", id)
	}

	if len(fields) == 0 {
		return entity.Environment{}, common.NewNotFoundError("environment", id)
	}

	return r.parse(id, fields)
}

func (r ValkeyRepo) CreateEnvironment(ctx context.Context, env entity.Environment) (entity.Environment, error) {
	env.UpdatedAt = r.clock.Now()

	resp := createScript.Exec(ctx, r.client, []string{key(env.ID)}, mapToFields(env))

	return r.handleScriptResponse(env.ID, resp, "failed to create environment %s", env.ID)
}

func (r ValkeyRepo) UpdateEnvironment(ctx context.Context, id string, update entity.EnvironmentUpdate) (entity.Environment, error) {
	args := append([]string{""}, mapUpdateToFields(update, r.clock.Now())...)

	resp := updateScript.Exec(ctx, r.client, []string{key(id)}, args)

	return r.handleScriptResponse(id, resp, "failed to update environment %s", id)
}

func (r ValkeyRepo) UpdateEnvironmentIf(ctx context.Context, id string, expectedUpdatedAt time.Time, update entity.EnvironmentUpdate) (entity.Environment, error) {
	args := append([]string{formatTime(expectedUpdatedAt)}, mapUpdateToFields(update, r.clock.Now())...)

	resp := updateScript.Exec(ctx, r.client, []string{key(id)}, args)

	return r.handleScriptResponse(id, resp, "failed to conditionally update environment %s", id)
}

func (r ValkeyRepo) ReinitializeEnvironment(ctx context.Context, id string) (entity.Environment, error) {
	status := entity.StatusPending
	empty := ""

	update := entity.EnvironmentUpdate{
		Status:                &status,
		InstanceIdentifier:    &empty,
		InstanceArn:           &empty,
		ProvisionedWorkflowID: &empty,
		ClearError:            true,
	}

	return r.UpdateEnvironment(ctx, id, update)
}

func (r ValkeyRepo) handleScriptResponse(id string, resp valkey.ValkeyResult, reason string, args ...interface{}) (entity.Environment, error) {
	err := resp.Error()
	if err != nil {
		vErr, isValkeyError := valkey.IsValkeyErr(err)
		if isValkeyError {
			switch {
			case strings.HasPrefix(vErr.Error(), replyNotFound):
				return entity.Environment{}, common.NewNotFoundError("environment", id)
			case strings.HasPrefix(vErr.Error(), replyConflict):
				return entity.Environment{}, common.NewErrProcessingError(common.ErrConflict, repo.CategoryValkeyClientError, nil, reason, args...)
			case strings.HasPrefix(vErr.Error(), replyExists):
				return entity.Environment{}, common.NewPreconditionError("environment %s already exists", id)
			}
		}

		return entity.Environment{}, repo.NewValkeyClientError(err, reason, args...)
	}

	fields, err := resp.AsStrMap()
	if err != nil {
		return entity.Environment{}, common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "unexpected script response type for %s", id)
	}

	return r.parse(id, fields)
}

func (r ValkeyRepo) parse(id string, fields map[string]string) (entity.Environment, error) {
	ret, err := mapToEntity(fields)
	if err != nil {
		return entity.Environment{}, common.NewErrProcessingError(err, repo.CategoryInternalError, nil, "failed to parse environment %s", id)
	}

	return ret, nil
}

func key(id string) string {
	return keyPrefix + id
}
