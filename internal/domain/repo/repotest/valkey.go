// Package repotest starts the backing services the repository integration tests run against.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/factory"
)

const valkeyImage = "quay.io/sclorg/valkey-7-c10s:bf91acf0827dc5db216164aafe3d34beb245dcec"

func StartValkey(t *testing.T) testcontainers.Container {
	req := testcontainers.ContainerRequest{
		Image:        valkeyImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections tcp"),
	}
	ret, err := testcontainers.GenericContainer(context.Background(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	testcontainers.CleanupContainer(t, ret)

	require.NoError(t, err, "failed to start valkey instance")

	return ret
}

func CreateValkeyClient(t *testing.T, container testcontainers.Container) valkey.Client {
	endpoint, err := container.Endpoint(context.Background(), "")
	require.NoError(t, err, "failed to get valkey endpoint")

	ret, closeFunc, err := factory.CreateValkeyClient(context.Background(), config.Valkey{URL: endpoint})
	require.NoError(t, err, "failed to create valkey client")

	t.Cleanup(func() {
		_ = closeFunc(context.Background())
	})

	return ret
}

func FlushValkey(t *testing.T, client valkey.Client) {
	command := client.B().Flushall().Build()

	err := client.Do(context.Background(), command).Error()
	require.NoError(t, err, "failed to clean valkey")
}
