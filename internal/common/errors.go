package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

var (
	// ErrAccessDenied is fatal: the target role refused the caller.
	ErrAccessDenied = errors.New("access denied")
	// ErrExternalDependency is transient. It always matches pipeline.ErrRetryableError too.
	ErrExternalDependency = errors.New("external dependency failure")
	ErrNotFound           = errors.New("not found")
	ErrMalformedEvent     = errors.New("malformed event")
	ErrPrecondition       = errors.New("precondition failed")
	// ErrConflict is returned by conditional updates when the record moved in between.
	ErrConflict = errors.New("conflicting update")
)

type CloseFunc func(context.Context) error

func NewErrProcessingError(err error, category string, inputs []pipeline.Input, reason string, args ...interface{}) pipeline.ErrProcessingError {
	cause := fmt.Sprintf(reason, args...)
	dErr := fmt.Errorf("%s: %w", cause, err)

	return pipeline.NewErrProcessingError(dErr, category, inputs)
}

func NewRetryableErrProcessingError(err error, category string, inputs []pipeline.Input, reason string, args ...interface{}) pipeline.ErrProcessingError {
	return NewErrProcessingError(pipeline.NewErrRetryableError(err), category, inputs, reason, args...)
}

func NewExternalDependencyError(err error, reason string, args ...interface{}) error {
	cause := fmt.Sprintf(reason, args...)

	return fmt.Errorf("%s: %w: %w", cause, ErrExternalDependency, pipeline.NewErrRetryableError(err))
}

func NewAccessDeniedError(err error, reason string, args ...interface{}) error {
	cause := fmt.Sprintf(reason, args...)

	return fmt.Errorf("%s: %w: %w", cause, ErrAccessDenied, err)
}

func NewNotFoundError(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

func NewPreconditionError(reason string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(reason, args...))
}
