package factory

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3control"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/log"
)

// CreateAWSConfig builds the main account configuration. Target account clients are derived from it.
func CreateAWSConfig(ctx context.Context, conf config.AWS) (aws.Config, error) {
	return loadAWSConfig(ctx, conf.Region, conf.BaseEndpoint, conf.Creds)
}

func CreateSTSClient(awsConfig aws.Config) *sts.Client {
	return sts.NewFromConfig(awsConfig)
}

func CreateS3ControlClient(awsConfig aws.Config) *s3control.Client {
	return s3control.NewFromConfig(awsConfig)
}

func loadAWSConfig(ctx context.Context, region, endpoint string, creds config.AWSCreds) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithLogger(AWSLogger{log.Logger().WithName("aws")}),
	}

	// Default credential chain otherwise
	if creds.AccessKeyID != "" && creds.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, "")))
	}

	ret, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to create aws config: %w", err)
	}

	if endpoint != "" {
		baseEndpoint := endpoint

		if !strings.HasPrefix(baseEndpoint, "http://") && !strings.HasPrefix(baseEndpoint, "https://") {
			baseEndpoint = fmt.Sprintf("https://%s", baseEndpoint)
		}

		ret.BaseEndpoint = &baseEndpoint
	}

	return ret, nil
}

type AWSLogger struct {
	logger logr.Logger
}

func (a AWSLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	level := 0

	switch classification {
	case logging.Debug:
		level = 3
	case logging.Warn:
		level = 0
	default:
		return
	}

	msg := fmt.Sprintf(format, v...)

	a.logger.V(level).Info(msg)
}
