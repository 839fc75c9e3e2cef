package history

import (
	"time"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

type transitionRecord struct {
	EnvironmentID  string           `json:"environmentId"`
	Operation      entity.Operation `json:"operation"`
	From           entity.Status    `json:"from"`
	To             entity.Status    `json:"to"`
	EventTimestamp time.Time        `json:"eventTimestamp"`
	AppliedAt      time.Time        `json:"appliedAt"`
}

func mapToRecord(transition entity.Transition) transitionRecord {
	return transitionRecord{
		EnvironmentID:  transition.EnvironmentID,
		Operation:      transition.Operation,
		From:           transition.From,
		To:             transition.To,
		EventTimestamp: transition.EventTimestamp.UTC(),
		AppliedAt:      transition.AppliedAt.UTC(),
	}
}
