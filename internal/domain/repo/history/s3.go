package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

const keyTemplate = "<prefix>/<year>-<month>-<day>/<environment>/<nanos>-<status>.json"

var ErrMissingEnvironmentID = errors.New("missing environment id")

// S3Writer archives applied transitions, one object per transition.
type S3Writer struct {
	s3client *s3.Client

	bucket string
	prefix string
}

func NewS3Writer(s3client *s3.Client, bucket string, prefix string) S3Writer {
	return S3Writer{
		s3client: s3client,
		bucket:   bucket,
		prefix:   prefix,
	}
}

func (s S3Writer) WriteTransition(ctx context.Context, transition entity.Transition) error {
	key, err := s.computeObjectKey(transition)
	if err != nil {
		return fmt.Errorf("failed to compute object key: %w", err)
	}

	b, err := json.Marshal(mapToRecord(transition))
	if err != nil {
		return fmt.Errorf("failed to marshal transition: %w", err)
	}

	contentType := "application/json"
	params := &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(b),
		ContentType: &contentType,
	}

	_, err = s.s3client.PutObject(ctx, params)
	if err != nil {
		return common.NewExternalDependencyError(err, "failed to write %s in s3", key)
	}

	return nil
}

func (s S3Writer) computeObjectKey(transition entity.Transition) (string, error) {
	if transition.EnvironmentID == "" {
		return "", ErrMissingEnvironmentID
	}

	ts := transition.AppliedAt.UTC()

	template := strings.NewReplacer(
		"<prefix>", s.prefix,
		"<year>", fmt.Sprintf("%04d", ts.Year()),
		"<month>", fmt.Sprintf("%02d", ts.Month()),
		"<day>", fmt.Sprintf("%02d", ts.Day()),
		"<environment>", transition.EnvironmentID,
		"<nanos>", fmt.Sprintf("%d", ts.UnixNano()),
		"<status>", strings.ToLower(string(transition.To)),
	)

	return template.Replace(keyTemplate), nil
}
