package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/repotest"
	"github.com/research-workspaces/env-lifecycle/internal/factory"
)

func TestCreateValkeyClient(t *testing.T) {
	ctx := context.Background()

	container := repotest.StartValkey(t)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, closeFunc, err := factory.CreateValkeyClient(ctx, config.Valkey{URL: endpoint, DB: 3, ClientName: "env-lifecycle-test"})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = closeFunc(ctx)
	})

	name, err := client.Do(ctx, client.B().ClientGetname().Build()).ToString()
	require.NoError(t, err)
	assert.Equal(t, "env-lifecycle-test", name)

	require.NoError(t, client.Do(ctx, client.B().Set().Key("environment:e1").Value("1").Build()).Error())

	defaultDB := repotest.CreateValkeyClient(t, container)

	exists, err := defaultDB.Do(ctx, defaultDB.B().Exists().Key("environment:e1").Build()).AsInt64()
	require.NoError(t, err)
	assert.Zero(t, exists, "records live in the configured database only")
}

func TestCreateValkeyClientUnreachable(t *testing.T) {
	_, _, err := factory.CreateValkeyClient(context.Background(), config.Valkey{URL: "127.0.0.1:1"})
	assert.Error(t, err)
}
