package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/jonboulle/clockwork"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/datasets"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/dataset"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/environment"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/lookup"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/project"
	"github.com/research-workspaces/env-lifecycle/internal/factory"
	"github.com/research-workspaces/env-lifecycle/internal/lifecycle"
	"github.com/research-workspaces/env-lifecycle/internal/provider/automation"
	"github.com/research-workspaces/env-lifecycle/internal/provider/compute"
	"github.com/research-workspaces/env-lifecycle/internal/provider/crossaccount"
)

type stores struct {
	environments environment.ValkeyRepo
	lookup       lookup.ValkeyRepo
	projects     project.ValkeyRepo
	mounts       dataset.ValkeyRepo
}

func createStores(ctx context.Context, clock clockwork.Clock) (stores, common.CloseFunc, error) {
	client, closeFunc, err := factory.CreateValkeyClient(ctx, conf.Valkey)
	if err != nil {
		return stores{}, nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	ret := stores{
		environments: environment.NewValkeyRepo(client, clock),
		lookup:       lookup.NewValkeyRepo(client),
		projects:     project.NewValkeyRepo(client),
		mounts:       dataset.NewValkeyRepo(client),
	}

	return ret, closeFunc, nil
}

type providers struct {
	accessor   crossaccount.STSAccessor
	automation automation.SSMRunner
	compute    compute.EC2Compute
}

func createProviders(awsConfig aws.Config, clock clockwork.Clock) providers {
	return providers{
		accessor:   crossaccount.NewSTSAccessor(factory.CreateSTSClient(awsConfig), clock, conf.DefaultTimeout),
		automation: automation.NewSSMRunner(awsConfig, conf.Automation, conf.DefaultTimeout),
		compute:    compute.NewEC2Compute(awsConfig, conf.DefaultTimeout),
	}
}

func createOrchestrator(ctx context.Context) (lifecycle.Orchestrator, stores, common.CloseFunc, error) {
	clock := clockwork.NewRealClock()

	s, closeFunc, err := createStores(ctx, clock)
	if err != nil {
		return lifecycle.Orchestrator{}, stores{}, nil, err
	}

	awsConfig, err := factory.CreateAWSConfig(ctx, conf.AWS)
	if err != nil {
		_ = closeFunc(ctx)

		return lifecycle.Orchestrator{}, stores{}, nil, err
	}

	p := createProviders(awsConfig, clock)

	dataSets := datasets.NewService(s.mounts, factory.CreateS3ControlClient(awsConfig), conf.AWS.MainAccountID, conf.DefaultTimeout)

	ret := lifecycle.NewOrchestrator(lifecycle.Dependencies{
		Environments: s.environments,
		Projects:     s.projects,
		TypeConfigs:  s.projects,
		Accessor:     p.accessor,
		Automation:   p.automation,
		Compute:      p.compute,
		DataSets:     dataSets,
	}, conf.Automation)

	return ret, s, closeFunc, nil
}
