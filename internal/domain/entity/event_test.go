package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

func TestDecodeLifecycleEvent(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 3, 15, 9, 54, 123000000, time.UTC)

	type testCase struct {
		name     string
		input    string
		expected entity.LifecycleEvent
		err      error
	}

	cases := []testCase{
		{
			name:  "launch",
			input: `{"environmentId":"e1","operation":"Launch","status":"COMPLETED","eventTimestamp":"2025-03-03T15:09:54.123Z","payload":{"executionId":"exec-1"}}`,
			expected: entity.LifecycleEvent{
				EnvironmentID:  "e1",
				Operation:      entity.OperationLaunch,
				ReportedStatus: entity.StatusCompleted,
				EventTimestamp: ts,
				Payload:        entity.LaunchPayload{ExecutionID: "exec-1"},
			},
		},
		{
			name:  "provider stop notification",
			input: `{"operation":"Stop","status":"STOPPED","eventTimestamp":"2025-03-03T16:09:54.123+01:00","payload":{"instanceId":"i-0123"}}`,
			expected: entity.LifecycleEvent{
				InstanceIdentifier: "i-0123",
				Operation:          entity.OperationStop,
				ReportedStatus:     entity.StatusStopped,
				EventTimestamp:     ts,
				Payload:            entity.StopPayload{InstanceID: "i-0123"},
			},
		},
		{
			name:  "unknown status is kept",
			input: `{"environmentId":"e1","operation":"Terminate","status":"NOT_A_STATUS","eventTimestamp":"2025-03-03T15:09:54.123Z"}`,
			expected: entity.LifecycleEvent{
				EnvironmentID:  "e1",
				Operation:      entity.OperationTerminate,
				ReportedStatus: "NOT_A_STATUS",
				EventTimestamp: ts,
				Payload:        entity.TerminatePayload{},
			},
		},
		{
			name:  "unknown operation",
			input: `{"environmentId":"e1","operation":"Reboot","status":"STARTED","eventTimestamp":"2025-03-03T15:09:54.123Z"}`,
			err:   common.ErrMalformedEvent,
		},
		{
			name:  "invalid timestamp",
			input: `{"environmentId":"e1","operation":"Launch","status":"STARTED","eventTimestamp":"yesterday"}`,
			err:   common.ErrMalformedEvent,
		},
		{
			name:  "no identity",
			input: `{"operation":"Launch","status":"STARTED","eventTimestamp":"2025-03-03T15:09:54.123Z"}`,
			err:   common.ErrMalformedEvent,
		},
		{
			name:  "invalid payload",
			input: `{"environmentId":"e1","operation":"Launch","status":"STARTED","eventTimestamp":"2025-03-03T15:09:54.123Z","payload":[1]}`,
			err:   common.ErrMalformedEvent,
		},
		{
			name:  "not json",
			input: `{"environmentId":`,
			err:   common.ErrMalformedEvent,
		},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			res := entity.LifecycleEvent{}

			err := json.Unmarshal([]byte(c.input), &res)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)

				return
			}

			require.NoError(t, err)
			assert.True(t, c.expected.EventTimestamp.Equal(res.EventTimestamp), "timestamp %v", res.EventTimestamp)

			res.EventTimestamp = c.expected.EventTimestamp
			assert.Equal(t, c.expected, res)
		})
	}
}

func TestEncodeLifecycleEventWithMismatchingPayload(t *testing.T) {
	t.Parallel()

	event := entity.LifecycleEvent{
		EnvironmentID:  "e1",
		Operation:      entity.OperationStart,
		ReportedStatus: entity.StatusStarted,
		Payload:        entity.LaunchPayload{ExecutionID: "exec-1"},
	}

	_, err := json.Marshal(event)
	require.ErrorIs(t, err, common.ErrMalformedEvent)
}

func TestCanReconcile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.True(entity.CanReconcile(entity.OperationLaunch, entity.StatusPending, entity.StatusCompleted))
	assert.True(entity.CanReconcile(entity.OperationStart, entity.StatusStarting, entity.StatusStartingFailed))
	assert.True(entity.CanReconcile(entity.OperationTerminate, entity.StatusTerminating, entity.StatusTerminated))

	assert.False(entity.CanReconcile(entity.OperationTerminate, entity.StatusPending, entity.StatusTerminated), "terminated needs a termination first")
	assert.False(entity.CanReconcile(entity.OperationLaunch, entity.StatusTerminated, entity.StatusStarted), "terminated is final")
	assert.False(entity.CanReconcile(entity.OperationStop, entity.StatusCompleted, entity.StatusStopped), "stop goes through stopping")

	assert.False(entity.CanReconcile(entity.OperationStop, entity.StatusPending, entity.StatusStarted), "only launch events leave pending")
	assert.False(entity.CanReconcile(entity.OperationStart, entity.StatusPending, entity.StatusStarted), "only launch events leave pending")
	assert.False(entity.CanReconcile(entity.OperationLaunch, entity.StatusStarting, entity.StatusStarted), "a launch does not settle a start")
	assert.False(entity.CanReconcile(entity.OperationStart, entity.StatusStopping, entity.StatusStopped))

	assert.True(entity.StatusStoppingFailed.IsTerminal())
	assert.False(entity.StatusStoppingFailed.IsRelaunchable(), "the instance may still exist")
	assert.True(entity.StatusFailed.IsRelaunchable())
	assert.False(entity.Status("NOT_A_STATUS").IsValid())
}

func TestCanRequest(t *testing.T) {
	t.Parallel()

	type testCase struct {
		operation entity.Operation
		from      entity.Status
		allowed   bool
	}

	cases := []testCase{
		{operation: entity.OperationStart, from: entity.StatusStopped, allowed: true},
		{operation: entity.OperationStart, from: entity.StatusStarted},
		{operation: entity.OperationStart, from: entity.StatusTerminated},
		{operation: entity.OperationStart, from: entity.StatusStartingFailed},
		{operation: entity.OperationStop, from: entity.StatusStarted, allowed: true},
		{operation: entity.OperationStop, from: entity.StatusCompleted, allowed: true},
		{operation: entity.OperationStop, from: entity.StatusStoppingFailed},
		{operation: entity.OperationTerminate, from: entity.StatusStopped, allowed: true},
		{operation: entity.OperationTerminate, from: entity.StatusTerminated},
		{operation: entity.OperationTerminate, from: entity.StatusTerminating},
		{operation: entity.OperationTerminate, from: entity.StatusFailed},
		{operation: entity.OperationLaunch, from: entity.StatusPending},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, entity.CanRequest(c.operation, c.from), "%s from %s", c.operation, c.from)
	}
}
