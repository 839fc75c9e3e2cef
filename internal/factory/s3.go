package factory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/research-workspaces/env-lifecycle/internal/config"
)

func CreateS3Client(ctx context.Context, conf config.S3) (*s3.Client, error) {
	awsConfig, err := loadAWSConfig(ctx, conf.Region, conf.BaseEndpoint, conf.Creds)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client for bucket %s: %w", conf.Bucket, err)
	}

	ret := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = conf.UsePathStyle
	})

	return ret, nil
}
