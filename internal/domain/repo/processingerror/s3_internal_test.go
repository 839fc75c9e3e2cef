package processingerror

import (
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

func TestComputeObjectKey(t *testing.T) {
	repo := S3Writer{prefix: "dlq"}

	pErr := pipeline.NewErrProcessingError(errors.New("boom"), "test", nil)

	_, err := repo.computeObjectKey(pErr)
	require.ErrorIs(t, err, ErrNilEvent)

	pErr.Event = &sarama.ConsumerMessage{
		Topic:     "environment-status",
		Partition: 3,
		Offset:    1024,
		Timestamp: time.Unix(1741014594, 0),
	}

	key, err := repo.computeObjectKey(pErr)
	require.NoError(t, err)
	assert.Equal(t, "dlq/2025/03/03/environment-status/3-1024.json", key)
}

func TestCreateProcessingError(t *testing.T) {
	now := time.Date(2025, 3, 3, 15, 9, 54, 0, time.UTC)
	repo := S3Writer{clock: clockwork.NewFakeClockAt(now), hostname: "host"}

	cause := common.NewExternalDependencyError(errors.New("throttled"), "ssm")
	pErr := common.NewErrProcessingError(cause, "automation", []pipeline.Input{{Key: "environmentId", Value: []byte("env-1")}}, "failed to start runbook")
	pErr.Event = &sarama.ConsumerMessage{Topic: "environment-status", Value: []byte(`{}`)}

	res, err := repo.createProcessingError(pErr)
	require.NoError(t, err)

	assert.Equal(t, now, res.ProcessingContext.Time)
	assert.Equal(t, "host", res.ProcessingContext.Host)
	assert.Equal(t, []byte(`{}`), res.Sources.Main.Payload)
	assert.Equal(t, []KeyValue{{Key: "environmentId", Value: []byte("env-1")}}, res.Sources.Additional)
	assert.Equal(t, "automation", res.Reason.Category)
	assert.Equal(t, KindExternalDependency, res.Reason.Kind)
	assert.True(t, res.Reason.Retryable)
}

func TestClassify(t *testing.T) {
	testcases := []struct {
		err    error
		expect Kind
	}{
		{err: common.NewAccessDeniedError(errors.New("nope"), "assume role"), expect: KindAccessDenied},
		{err: common.NewNotFoundError("environment", "env-1"), expect: KindNotFound},
		{err: common.NewPreconditionError("no instance"), expect: KindPrecondition},
		{err: common.ErrMalformedEvent, expect: KindMalformedEvent},
		{err: common.ErrConflict, expect: KindConflict},
		{err: errors.New("boom"), expect: KindUnknown},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.expect, classify(tc.err), "unexpected kind for %v", tc.err)
	}
}
