package compute

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
)

type EC2API interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// EC2Compute starts and stops instances in the target account. Both calls return once the request is accepted.
type EC2Compute struct {
	base      aws.Config
	newClient func(aws.Config) EC2API
	timeout   time.Duration
}

func NewEC2Compute(base aws.Config, timeout time.Duration) EC2Compute {
	return EC2Compute{
		base: base,
		newClient: func(c aws.Config) EC2API {
			return ec2.NewFromConfig(c)
		},
		timeout: timeout,
	}
}

func (c EC2Compute) StartInstance(ctx context.Context, creds entity.DelegatedCredentials, instanceID string) error {
	client := c.newClient(provider.TargetConfig(c.base, creds))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := client.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return provider.NewAWSError(err, "failed to start instance %s", instanceID)
	}

	log.Logger().WithName("compute").V(1).Info("Instance start requested", "instanceId", instanceID)

	return nil
}

func (c EC2Compute) StopInstance(ctx context.Context, creds entity.DelegatedCredentials, instanceID string) error {
	client := c.newClient(provider.TargetConfig(c.base, creds))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return provider.NewAWSError(err, "failed to stop instance %s", instanceID)
	}

	log.Logger().WithName("compute").V(1).Info("Instance stop requested", "instanceId", instanceID)

	return nil
}
