package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("boom")

	type testCase struct {
		name      string
		err       error
		sentinel  error
		retryable bool
	}

	cases := []testCase{
		{
			name:      "external dependency is retryable",
			err:       common.NewExternalDependencyError(cause, "failed to call %s", "ssm"),
			sentinel:  common.ErrExternalDependency,
			retryable: true,
		},
		{
			name:     "access denied is not retryable",
			err:      common.NewAccessDeniedError(cause, "failed to assume %s", "role"),
			sentinel: common.ErrAccessDenied,
		},
		{
			name:     "not found",
			err:      common.NewNotFoundError("environment", "env-1"),
			sentinel: common.ErrNotFound,
		},
		{
			name:     "precondition",
			err:      common.NewPreconditionError("environment %s has no workflow", "env-1"),
			sentinel: common.ErrPrecondition,
		},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("outer: %w", c.err)

			assert.ErrorIs(t, wrapped, c.sentinel)
			assert.Equal(t, c.retryable, errors.Is(wrapped, pipeline.ErrRetryableError))
		})
	}
}

func TestExternalDependencyKeepsCause(t *testing.T) {
	cause := errors.New("throttled")

	err := common.NewExternalDependencyError(cause, "failed to start automation")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to start automation")
}
