package history

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

type LogWriter struct {
	logger logr.Logger
}

func NewLogWriter(logger logr.Logger) LogWriter {
	return LogWriter{logger: logger}
}

func (w LogWriter) WriteTransition(_ context.Context, transition entity.Transition) error {
	w.logger.V(1).Info("Transition applied",
		"environmentId", transition.EnvironmentID,
		"operation", transition.Operation,
		"from", transition.From,
		"to", transition.To,
		"eventTimestamp", transition.EventTimestamp,
	)

	return nil
}
