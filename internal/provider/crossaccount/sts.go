package crossaccount

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/jonboulle/clockwork"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/log"
	"github.com/research-workspaces/env-lifecycle/internal/provider"
)

// Provider limit on role session names
const maxSessionNameLength = 64

type STSAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

type STSAccessor struct {
	client  STSAPI
	clock   clockwork.Clock
	timeout time.Duration
}

func NewSTSAccessor(client STSAPI, clock clockwork.Clock, timeout time.Duration) STSAccessor {
	return STSAccessor{
		client:  client,
		clock:   clock,
		timeout: timeout,
	}
}

func (a STSAccessor) Assume(ctx context.Context, roleArn, sessionNamePrefix, externalID string) (entity.DelegatedCredentials, error) {
	sessionName := a.sessionName(sessionNamePrefix)

	params := &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleArn),
		RoleSessionName: aws.String(sessionName),
	}

	if externalID != "" {
		params.ExternalId = aws.String(externalID)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	out, err := a.client.AssumeRole(ctx, params)
	if err != nil {
		return entity.DelegatedCredentials{}, provider.NewAWSError(err, "failed to assume role %s", roleArn)
	}

	if out.Credentials == nil {
		return entity.DelegatedCredentials{}, provider.NewAWSError(fmt.Errorf("no credentials returned"), "failed to assume role %s", roleArn)
	}

	log.Logger().WithName("crossaccount").V(2).Info("Role assumed", "roleArn", roleArn, "sessionName", sessionName)

	return entity.DelegatedCredentials{
		RoleArn:         roleArn,
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Expiration:      aws.ToTime(out.Credentials.Expiration),
	}, nil
}

// sessionName is suffixed with the current time so every assumption is traceable on its own.
func (a STSAccessor) sessionName(prefix string) string {
	suffix := fmt.Sprintf("-%d", a.clock.Now().UnixMilli())

	if len(prefix)+len(suffix) > maxSessionNameLength {
		prefix = prefix[:maxSessionNameLength-len(suffix)]
	}

	return prefix + suffix
}
