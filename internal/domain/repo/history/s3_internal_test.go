package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

func FuzzComputeObjectKey(f *testing.F) {
	for _, seed := range []string{"env-1", "4f1c2a", "", "a/b"} {
		f.Add(seed)
	}

	repo := S3Writer{prefix: "history"}
	now := time.Now()

	f.Fuzz(func(t *testing.T, id string) {
		key, err := repo.computeObjectKey(entity.Transition{
			EnvironmentID: id,
			To:            entity.StatusStarted,
			AppliedAt:     now,
		})

		if id == "" {
			assert.ErrorIs(t, err, ErrMissingEnvironmentID)

			return
		}

		assert.NoError(t, err)
		assert.Contains(t, key, "/"+id+"/")
	})
}

func TestComputeObjectKey(t *testing.T) {
	repo := S3Writer{prefix: "custom"}

	testcases := []struct {
		transition entity.Transition
		shouldFail bool
		expect     string
	}{
		{
			transition: entity.Transition{
				EnvironmentID: "env-1",
				To:            entity.StatusStarted,
				AppliedAt:     time.Unix(1741014594, 0),
			},
			expect: "custom/2025-03-03/env-1/1741014594000000000-started.json",
		},
		{
			transition: entity.Transition{
				EnvironmentID: "env-2",
				To:            entity.StatusTerminatingFailed,
				AppliedAt:     time.Unix(1741014594, 5),
			},
			expect: "custom/2025-03-03/env-2/1741014594000000005-terminating_failed.json",
		},
		{
			transition: entity.Transition{
				To:        entity.StatusStarted,
				AppliedAt: time.Unix(1741014594, 0),
			},
			shouldFail: true,
		},
	}
	for _, tc := range testcases {
		key, err := repo.computeObjectKey(tc.transition)

		if tc.shouldFail {
			assert.Error(t, err, "transition is supposed to generate an invalid key")

			continue
		}

		assert.Equal(t, tc.expect, key)
	}
}
