package provider

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

var accessDeniedCodes = map[string]struct{}{
	"AccessDenied":                {},
	"AccessDeniedException":       {},
	"AuthFailure":                 {},
	"UnauthorizedOperation":       {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"InvalidClientTokenId":        {},
	"RegionDisabledException":     {},
	"UnrecognizedClientException": {},
}

// NewAWSError maps an aws sdk failure onto the lifecycle error taxonomy.
// Only authorization failures are fatal, anything else is assumed transient.
func NewAWSError(err error, reason string, args ...interface{}) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		_, denied := accessDeniedCodes[apiErr.ErrorCode()]
		if denied {
			return common.NewAccessDeniedError(err, reason, args...)
		}
	}

	return common.NewExternalDependencyError(err, reason, args...)
}

// TargetConfig derives the configuration used to call a target account with delegated credentials.
func TargetConfig(base aws.Config, creds entity.DelegatedCredentials) aws.Config {
	ret := base.Copy()
	ret.Credentials = aws.NewCredentialsCache(
		credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
	)

	return ret
}
