package history

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
)

type ParallelWriter struct {
	writers []repo.TransitionWriter
}

func NewParallelWriter(writers ...repo.TransitionWriter) ParallelWriter {
	return ParallelWriter{
		writers: writers,
	}
}

func (p ParallelWriter) WriteTransition(ctx context.Context, transition entity.Transition) error {
	group, ctx := errgroup.WithContext(ctx)

	for _, w := range p.writers {
		writer := w

		group.Go(func() error {
			return writer.WriteTransition(ctx, transition)
		})
	}

	return group.Wait()
}
