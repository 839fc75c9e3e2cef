package reconciler

import (
	"context"

	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

// DeadLetter parks the events the pipeline gave up on.
type DeadLetter struct {
	writer repo.ProcessingErrorWriter
}

func NewDeadLetter(writer repo.ProcessingErrorWriter) DeadLetter {
	return DeadLetter{
		writer: writer,
	}
}

func (d DeadLetter) Process(ctx context.Context, pErr pipeline.ErrProcessingError) error {
	return d.writer.WriteProcessingError(ctx, pErr)
}
