package common_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/research-workspaces/env-lifecycle/internal/common"
)

func TestSetupSignalHandler(t *testing.T) {
	ctx := common.SetupSignalHandler(context.Background())

	assert.NoError(t, ctx.Err())
	assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled on SIGTERM")
	}
}
