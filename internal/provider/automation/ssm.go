package automation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/google/uuid"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
)

var (
	errStillRunning    = errors.New("execution still running")
	errExecutionFailed = errors.New("execution did not succeed")
	errMissingOutput   = errors.New("missing execution output")
)

type SSMAPI interface {
	StartAutomationExecution(ctx context.Context, params *ssm.StartAutomationExecutionInput, optFns ...func(*ssm.Options)) (*ssm.StartAutomationExecutionOutput, error)
	GetAutomationExecution(ctx context.Context, params *ssm.GetAutomationExecutionInput, optFns ...func(*ssm.Options)) (*ssm.GetAutomationExecutionOutput, error)
}

// SSMRunner runs automation documents in the target account of the delegated credentials.
type SSMRunner struct {
	base      aws.Config
	newClient func(aws.Config) SSMAPI

	conf    config.Automation
	timeout time.Duration
}

func NewSSMRunner(base aws.Config, conf config.Automation, timeout time.Duration) SSMRunner {
	// retry-go polls forever on zero attempts
	if conf.Poll.MaxAttempt == 0 {
		conf.Poll.MaxAttempt = 1
	}

	return SSMRunner{
		base: base,
		newClient: func(c aws.Config) SSMAPI {
			return ssm.NewFromConfig(c)
		},
		conf:    conf,
		timeout: timeout,
	}
}

func (r SSMRunner) Start(ctx context.Context, runbookName string, creds entity.DelegatedCredentials, parameters map[string]string) error {
	client := r.newClient(provider.TargetConfig(r.base, creds))

	params := &ssm.StartAutomationExecutionInput{
		DocumentName: aws.String(runbookName),
		Parameters:   toSSMParameters(parameters),
		// Fresh token: two launches of the same environment are two executions
		ClientToken: aws.String(uuid.NewString()),
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := client.StartAutomationExecution(ctx, params)
	if err != nil {
		return provider.NewAWSError(err, "failed to start runbook %s", runbookName)
	}

	log.Logger().WithName("automation").V(1).Info("Runbook started",
		"runbook", runbookName,
		"executionId", aws.ToString(out.AutomationExecutionId),
	)

	return nil
}

// GetOutputs polls the execution with an exponential backoff until it settles.
func (r SSMRunner) GetOutputs(ctx context.Context, creds entity.DelegatedCredentials, executionID string) (entity.WorkflowOutputs, error) {
	client := r.newClient(provider.TargetConfig(r.base, creds))

	var execution *types.AutomationExecution

	err := retry.Do(
		func() error {
			ret, err := r.getExecution(ctx, client, executionID)
			if err != nil {
				return retry.Unrecoverable(err)
			}

			err = checkStatus(ret)
			if err != nil {
				return err
			}

			execution = ret

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.conf.Poll.MaxAttempt),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errStillRunning)
		}),
		retry.Delay(r.conf.Poll.Delay),
		retry.MaxDelay(r.conf.Poll.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if errors.Is(err, errStillRunning) {
		return entity.WorkflowOutputs{}, common.NewExternalDependencyError(err, "execution %s did not settle", executionID)
	}

	if err != nil {
		return entity.WorkflowOutputs{}, err
	}

	return r.extractOutputs(executionID, execution.Outputs)
}

func (r SSMRunner) getExecution(ctx context.Context, client SSMAPI, executionID string) (*types.AutomationExecution, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := client.GetAutomationExecution(ctx, &ssm.GetAutomationExecutionInput{
		AutomationExecutionId: aws.String(executionID),
	})
	if err != nil {
		return nil, provider.NewAWSError(err, "failed to get execution %s", executionID)
	}

	if out.AutomationExecution == nil {
		return nil, common.NewNotFoundError("execution", executionID)
	}

	return out.AutomationExecution, nil
}

func (r SSMRunner) extractOutputs(executionID string, outputs map[string][]string) (entity.WorkflowOutputs, error) {
	instanceID := firstValue(outputs, r.conf.Outputs.InstanceID)
	if instanceID == "" {
		return entity.WorkflowOutputs{}, fmt.Errorf("%w %s in execution %s", errMissingOutput, r.conf.Outputs.InstanceID, executionID)
	}

	return entity.WorkflowOutputs{
		InstanceID:  instanceID,
		InstanceArn: firstValue(outputs, r.conf.Outputs.InstanceArn),
	}, nil
}

func checkStatus(execution *types.AutomationExecution) error {
	switch execution.AutomationExecutionStatus {
	case types.AutomationExecutionStatusSuccess, types.AutomationExecutionStatusCompletedWithSuccess:
		return nil
	case types.AutomationExecutionStatusFailed,
		types.AutomationExecutionStatusTimedout,
		types.AutomationExecutionStatusCancelled,
		types.AutomationExecutionStatusRejected,
		types.AutomationExecutionStatusCompletedWithFailure,
		types.AutomationExecutionStatusExited:
		return retry.Unrecoverable(fmt.Errorf("%w: %s %s", errExecutionFailed, execution.AutomationExecutionStatus, aws.ToString(execution.FailureMessage)))
	default:
		return errStillRunning
	}
}

func toSSMParameters(parameters map[string]string) map[string][]string {
	ret := make(map[string][]string, len(parameters))

	for k, v := range parameters {
		ret[k] = []string{v}
	}

	return ret
}

func firstValue(outputs map[string][]string, name string) string {
	if name == "" || len(outputs[name]) == 0 {
		return ""
	}

	return outputs[name][0]
}
