package datasets

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3control"
	"github.com/aws/smithy-go"
	"golang.org/x/sync/errgroup"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
)

const (
	codeNoSuchAccessPoint = "NoSuchAccessPoint"

	maxParallelRelease = 4
)

type S3ControlAPI interface {
	DeleteAccessPoint(ctx context.Context, params *s3control.DeleteAccessPointInput, optFns ...func(*s3control.Options)) (*s3control.DeleteAccessPointOutput, error)
}

// Service exposes the data sets mounted in environments. Access points live in the main account.
type Service struct {
	mounts    repo.DataSetMounts
	client    S3ControlAPI
	accountID string
	timeout   time.Duration
}

func NewService(mounts repo.DataSetMounts, client S3ControlAPI, accountID string, timeout time.Duration) Service {
	return Service{
		mounts:    mounts,
		client:    client,
		accountID: accountID,
		timeout:   timeout,
	}
}

func (s Service) Descriptors(ctx context.Context, environmentID string) ([]entity.DataSetMount, error) {
	return s.mounts.GetMounts(ctx, environmentID)
}

// ReleaseAccessPoints deletes every access point created for the environment, then forgets its mounts.
// Access points already gone are ignored so a retried terminate goes through.
func (s Service) ReleaseAccessPoints(ctx context.Context, environmentID string) error {
	mounts, err := s.mounts.GetMounts(ctx, environmentID)
	if err != nil {
		return err
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallelRelease)

	for _, m := range mounts {
		mount := m

		if mount.AccessPointName == "" {
			continue
		}

		group.Go(func() error {
			return s.deleteAccessPoint(gctx, environmentID, mount)
		})
	}

	err = group.Wait()
	if err != nil {
		return err
	}

	return s.mounts.DeleteMounts(ctx, environmentID)
}

func (s Service) deleteAccessPoint(ctx context.Context, environmentID string, mount entity.DataSetMount) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteAccessPoint(ctx, &s3control.DeleteAccessPointInput{
		AccountId: aws.String(s.accountID),
		Name:      aws.String(mount.AccessPointName),
	})

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == codeNoSuchAccessPoint {
		err = nil
	}

	if err != nil {
		return provider.NewAWSError(err, "failed to delete access point %s", mount.AccessPointName)
	}

	log.ForEnvironment("datasets", environmentID).V(1).Info("Access point released",
		"dataSetId", mount.ID,
		"accessPoint", mount.AccessPointName,
	)

	return nil
}
