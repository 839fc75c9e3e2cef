package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/research-workspaces/env-lifecycle/internal/common"
)

type Operation string

const (
	OperationLaunch    Operation = "Launch"
	OperationTerminate Operation = "Terminate"
	OperationStart     Operation = "Start"
	OperationStop      Operation = "Stop"
)

// LifecycleEvent is one status signal relayed by the event bus.
// Operation is the discriminant of Payload.
type LifecycleEvent struct {
	EnvironmentID      string
	InstanceIdentifier string
	Operation          Operation
	ReportedStatus     Status
	EventTimestamp     time.Time
	Payload            Payload
}

// Payload is the operation specific part of a LifecycleEvent.
type Payload interface {
	Operation() Operation
}

// LaunchPayload names the provisioning execution.
type LaunchPayload struct {
	ExecutionID string `json:"executionId"`
}

func (LaunchPayload) Operation() Operation { return OperationLaunch }

// TerminatePayload names the termination execution.
type TerminatePayload struct {
	ExecutionID string `json:"executionId"`
}

func (TerminatePayload) Operation() Operation { return OperationTerminate }

// StartPayload is a provider start notification.
type StartPayload struct {
	InstanceID string `json:"instanceId"`
}

func (StartPayload) Operation() Operation { return OperationStart }

// StopPayload is a provider stop notification.
type StopPayload struct {
	InstanceID string `json:"instanceId"`
}

func (StopPayload) Operation() Operation { return OperationStop }

type eventEnvelope struct {
	EnvironmentID      string          `json:"environmentId,omitempty"`
	InstanceIdentifier string          `json:"instanceIdentifier,omitempty"`
	Operation          Operation       `json:"operation"`
	Status             string          `json:"status"`
	EventTimestamp     string          `json:"eventTimestamp"`
	Payload            json.RawMessage `json:"payload,omitempty"`
}

func (e *LifecycleEvent) UnmarshalJSON(data []byte) error {
	envelope := eventEnvelope{}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrMalformedEvent, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, envelope.EventTimestamp)
	if err != nil {
		return fmt.Errorf("%w: invalid eventTimestamp %q: %w", common.ErrMalformedEvent, envelope.EventTimestamp, err)
	}

	payload, err := decodePayload(envelope.Operation, envelope.Payload)
	if err != nil {
		return err
	}

	ret := LifecycleEvent{
		EnvironmentID:      envelope.EnvironmentID,
		InstanceIdentifier: envelope.InstanceIdentifier,
		Operation:          envelope.Operation,
		ReportedStatus:     Status(envelope.Status),
		EventTimestamp:     ts,
		Payload:            payload,
	}

	// Provider-native start/stop notifications only know the instance.
	if ret.InstanceIdentifier == "" {
		switch p := payload.(type) {
		case StartPayload:
			ret.InstanceIdentifier = p.InstanceID
		case StopPayload:
			ret.InstanceIdentifier = p.InstanceID
		}
	}

	if ret.EnvironmentID == "" && ret.InstanceIdentifier == "" {
		return fmt.Errorf("%w: neither environmentId nor instanceIdentifier set", common.ErrMalformedEvent)
	}

	*e = ret

	return nil
}

func (e LifecycleEvent) MarshalJSON() ([]byte, error) {
	envelope := eventEnvelope{
		EnvironmentID:      e.EnvironmentID,
		InstanceIdentifier: e.InstanceIdentifier,
		Operation:          e.Operation,
		Status:             string(e.ReportedStatus),
		EventTimestamp:     e.EventTimestamp.UTC().Format(time.RFC3339Nano),
	}

	if e.Payload != nil {
		if e.Payload.Operation() != e.Operation {
			return nil, fmt.Errorf("%w: payload for %s attached to a %s event", common.ErrMalformedEvent, e.Payload.Operation(), e.Operation)
		}

		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}

		envelope.Payload = raw
	}

	return json.Marshal(envelope)
}

func decodePayload(operation Operation, raw json.RawMessage) (Payload, error) {
	var err error

	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	switch operation {
	case OperationLaunch:
		p := LaunchPayload{}
		err = json.Unmarshal(raw, &p)
		if err == nil {
			return p, nil
		}
	case OperationTerminate:
		p := TerminatePayload{}
		err = json.Unmarshal(raw, &p)
		if err == nil {
			return p, nil
		}
	case OperationStart:
		p := StartPayload{}
		err = json.Unmarshal(raw, &p)
		if err == nil {
			return p, nil
		}
	case OperationStop:
		p := StopPayload{}
		err = json.Unmarshal(raw, &p)
		if err == nil {
			return p, nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", common.ErrMalformedEvent, operation)
	}

	return nil, fmt.Errorf("%w: invalid %s payload: %w", common.ErrMalformedEvent, operation, err)
}
