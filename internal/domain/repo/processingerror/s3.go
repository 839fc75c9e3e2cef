package processingerror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/common/version"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/pkg/pipeline"
)

const (
	unknownHostname = "<unknown>"

	keyTemplate = "<prefix>/<year>/<month>/<day>/<topic>/<partition>-<offset>.json"
)

var (
	ErrNilEvent = errors.New("nil event")
)

// S3Writer is the dead letter queue: every event the reconciler gave up on lands here with its failure reason.
type S3Writer struct {
	s3client *s3.Client
	clock    clockwork.Clock

	bucket string
	prefix string

	hostname string
}

func NewS3Writer(s3client *s3.Client, clock clockwork.Clock, bucket string, prefix string) S3Writer {
	hostname, err := os.Hostname()
	if err != nil {
		log.Logger().Error(err, "failed to get hostname, falling backing to "+unknownHostname)

		hostname = unknownHostname
	}

	return S3Writer{
		s3client: s3client,
		clock:    clock,
		bucket:   bucket,
		prefix:   prefix,
		hostname: hostname,
	}
}

func (r S3Writer) WriteProcessingError(ctx context.Context, pErr pipeline.ErrProcessingError) error {
	// Create ProcessingError
	obj, err := r.createProcessingError(pErr)
	if err != nil {
		return fmt.Errorf("failed to create local model: %w", err)
	}

	// Marshal ProcessingError
	b, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal local model: %w", err)
	}

	// Compute object key
	key, err := r.computeObjectKey(pErr)
	if err != nil {
		return fmt.Errorf("failed to compute object key: %w", err)
	}

	// Write file
	contentType := "application/json"
	params := &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &key,
		Body:        bytes.NewReader(b),
		ContentType: &contentType,
	}

	_, err = r.s3client.PutObject(ctx, params)
	if err != nil {
		return common.NewExternalDependencyError(err, "failed to write %s in s3", key)
	}

	return nil
}

func (r S3Writer) createProcessingError(pErr pipeline.ErrProcessingError) (ProcessingError, error) {
	if pErr.Event == nil {
		return ProcessingError{}, ErrNilEvent
	}

	ret := ProcessingError{
		ProcessingContext: ProcessingContext{
			Component: Component{
				Name:     "env-lifecycle",
				Version:  version.Version,
				Branch:   version.Branch,
				Revision: version.Revision,
			},
			Time: r.clock.Now(),
			Host: r.hostname,
		},
		Sources: Sources{
			Main: Source{
				Topic:     pErr.Event.Topic,
				Partition: pErr.Event.Partition,
				Offset:    pErr.Event.Offset,
				Key:       pErr.Event.Key,
				Payload:   pErr.Event.Value,
			},
			Additional: make([]KeyValue, 0, len(pErr.AdditionalInputs)),
		},
		Reason: Reason{
			Category:  pErr.Category,
			Kind:      classify(pErr),
			Retryable: errors.Is(pErr, pipeline.ErrRetryableError),
			Error:     pErr.Error(),
		},
	}

	for _, kv := range pErr.AdditionalInputs {
		ret.Sources.Additional = append(ret.Sources.Additional, KeyValue{
			Key:   kv.Key,
			Value: kv.Value,
		})
	}

	return ret, nil
}

func (r S3Writer) computeObjectKey(pErr pipeline.ErrProcessingError) (string, error) {
	if pErr.Event == nil {
		return "", ErrNilEvent
	}

	ts := pErr.Event.Timestamp.UTC()

	template := strings.NewReplacer(
		"<prefix>", r.prefix,
		"<year>", fmt.Sprintf("%04d", ts.Year()),
		"<month>", fmt.Sprintf("%02d", ts.Month()),
		"<day>", fmt.Sprintf("%02d", ts.Day()),
		"<topic>", pErr.Event.Topic,
		"<partition>", fmt.Sprintf("%d", pErr.Event.Partition),
		"<offset>", fmt.Sprintf("%d", pErr.Event.Offset),
	)

	return template.Replace(keyTemplate), nil
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, common.ErrAccessDenied):
		return KindAccessDenied
	case errors.Is(err, common.ErrExternalDependency):
		return KindExternalDependency
	case errors.Is(err, common.ErrNotFound):
		return KindNotFound
	case errors.Is(err, common.ErrMalformedEvent):
		return KindMalformedEvent
	case errors.Is(err, common.ErrPrecondition):
		return KindPrecondition
	case errors.Is(err, common.ErrConflict):
		return KindConflict
	default:
		return KindUnknown
	}
}
