package environment

import (
	"fmt"
	"time"

	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

const (
	fieldID                      = "id"
	fieldProjectID               = "projectId"
	fieldEnvironmentTypeID       = "environmentTypeId"
	fieldEnvironmentTypeConfigID = "environmentTypeConfigId"
	fieldStatus                  = "status"
	fieldInstanceIdentifier      = "instanceIdentifier"
	fieldInstanceArn             = "instanceArn"
	fieldProvisionedWorkflowID   = "provisionedWorkflowId"
	fieldErrorType               = "errorType"
	fieldErrorValue              = "errorValue"
	fieldUpdatedAt               = "updatedAt"

	timeLayout = time.RFC3339Nano
)

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func mapToFields(env entity.Environment) []string {
	errorType, errorValue := "", ""
	if env.Error != nil {
		errorType, errorValue = env.Error.Type, env.Error.Value
	}

	return []string{
		fieldID, env.ID,
		fieldProjectID, env.ProjectID,
		fieldEnvironmentTypeID, env.EnvironmentTypeID,
		fieldEnvironmentTypeConfigID, env.EnvironmentTypeConfigID,
		fieldStatus, string(env.Status),
		fieldInstanceIdentifier, env.InstanceIdentifier,
		fieldInstanceArn, env.InstanceArn,
		fieldProvisionedWorkflowID, env.ProvisionedWorkflowID,
		fieldErrorType, errorType,
		fieldErrorValue, errorValue,
		fieldUpdatedAt, formatTime(env.UpdatedAt),
	}
}

func mapUpdateToFields(update entity.EnvironmentUpdate, updatedAt time.Time) []string {
	ret := make([]string, 0, 14)

	if update.Status != nil {
		ret = append(ret, fieldStatus, string(*update.Status))
	}

	if update.InstanceIdentifier != nil {
		ret = append(ret, fieldInstanceIdentifier, *update.InstanceIdentifier)
	}

	if update.InstanceArn != nil {
		ret = append(ret, fieldInstanceArn, *update.InstanceArn)
	}

	if update.ProvisionedWorkflowID != nil {
		ret = append(ret, fieldProvisionedWorkflowID, *update.ProvisionedWorkflowID)
	}

	switch {
	case update.Error != nil:
		ret = append(ret, fieldErrorType, update.Error.Type, fieldErrorValue, update.Error.Value)
	case update.ClearError:
		ret = append(ret, fieldErrorType, "", fieldErrorValue, "")
	}

	return append(ret, fieldUpdatedAt, formatTime(updatedAt))
}

func mapToEntity(fields map[string]string) (entity.Environment, error) {
	updatedAt, err := time.Parse(timeLayout, fields[fieldUpdatedAt])
	if err != nil {
		return entity.Environment{}, fmt.Errorf("invalid %s: %w", fieldUpdatedAt, err)
	}

	ret := entity.Environment{
		ID:                      fields[fieldID],
		ProjectID:               fields[fieldProjectID],
		EnvironmentTypeID:       fields[fieldEnvironmentTypeID],
		EnvironmentTypeConfigID: fields[fieldEnvironmentTypeConfigID],
		Status:                  entity.Status(fields[fieldStatus]),
		InstanceIdentifier:      fields[fieldInstanceIdentifier],
		InstanceArn:             fields[fieldInstanceArn],
		ProvisionedWorkflowID:   fields[fieldProvisionedWorkflowID],
		UpdatedAt:               updatedAt,
	}

	if fields[fieldErrorType] != "" {
		ret.Error = &entity.ErrorDetail{
			Type:  fields[fieldErrorType],
			Value: fields[fieldErrorValue],
		}
	}

	return ret, nil
}
