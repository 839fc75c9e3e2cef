package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

// Runbook parameter names
const (
	paramEnvironmentID         = "EnvironmentId"
	paramProjectID             = "ProjectId"
	paramEnvironmentTypeID     = "EnvironmentTypeId"
	paramSubnetID              = "SubnetId"
	paramVpcID                 = "VpcId"
	paramEncryptionKeyArn      = "EncryptionKeyArn"
	paramDataSets              = "DataSets"
	paramInstanceID            = "InstanceId"
	paramProvisionedWorkflowID = "ProvisionedWorkflowId"
)

// launchParameters layers the placement of the project and the mounted data sets on top of the type config parameters.
func (o Orchestrator) launchParameters(ctx context.Context, env entity.Environment, project entity.Project) (map[string]string, error) {
	ret := map[string]string{}

	if env.EnvironmentTypeConfigID != "" {
		typeConfig, err := o.deps.TypeConfigs.GetEnvironmentTypeConfig(ctx, env.EnvironmentTypeConfigID)
		if err != nil {
			return nil, fmt.Errorf("failed to get environment type config: %w", err)
		}

		for k, v := range typeConfig.Params {
			ret[k] = v
		}
	}

	mounts, err := o.deps.DataSets.Descriptors(ctx, env.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get data set mounts: %w", err)
	}

	if mounts == nil {
		mounts = []entity.DataSetMount{}
	}

	encodedMounts, err := json.Marshal(mounts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data set mounts: %w", err)
	}

	ret[paramEnvironmentID] = env.ID
	ret[paramProjectID] = project.ID
	ret[paramEnvironmentTypeID] = env.EnvironmentTypeID
	ret[paramSubnetID] = project.SubnetID
	ret[paramVpcID] = project.VpcID
	ret[paramDataSets] = string(encodedMounts)

	if project.EncryptionKeyArn != "" {
		ret[paramEncryptionKeyArn] = project.EncryptionKeyArn
	}

	return ret, nil
}

func terminateParameters(env entity.Environment) map[string]string {
	ret := map[string]string{
		paramEnvironmentID:         env.ID,
		paramProvisionedWorkflowID: env.ProvisionedWorkflowID,
	}

	if env.InstanceIdentifier != "" {
		ret[paramInstanceID] = env.InstanceIdentifier
	}

	return ret
}
