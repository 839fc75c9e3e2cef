package entity

import (
	"fmt"
	"time"
)

const ErrorTypeLaunch = "LAUNCH"

type Environment struct {
	ID                      string
	ProjectID               string
	EnvironmentTypeID       string
	EnvironmentTypeConfigID string

	Status                Status
	InstanceIdentifier    string
	InstanceArn           string
	ProvisionedWorkflowID string
	Error                 *ErrorDetail

	UpdatedAt time.Time
}

type ErrorDetail struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EnvironmentUpdate lists the fields to rewrite. Nil fields are left untouched.
type EnvironmentUpdate struct {
	Status                *Status
	InstanceIdentifier    *string
	InstanceArn           *string
	ProvisionedWorkflowID *string
	Error                 *ErrorDetail
	ClearError            bool
}

func (u EnvironmentUpdate) IsEmpty() bool {
	return u.Status == nil && u.InstanceIdentifier == nil && u.InstanceArn == nil &&
		u.ProvisionedWorkflowID == nil && u.Error == nil && !u.ClearError
}

func StatusUpdate(status Status) EnvironmentUpdate {
	return EnvironmentUpdate{Status: &status}
}

func FailedUpdate(errorType, message string) EnvironmentUpdate {
	status := StatusFailed

	return EnvironmentUpdate{
		Status: &status,
		Error:  &ErrorDetail{Type: errorType, Value: message},
	}
}

type Project struct {
	ID               string `json:"id"`
	AccountID        string `json:"accountId"`
	RoleArn          string `json:"roleArn"`
	ExternalID       string `json:"externalId"`
	SubnetID         string `json:"subnetId"`
	VpcID            string `json:"vpcId"`
	EncryptionKeyArn string `json:"encryptionKeyArn"`
}

func (p Project) String() string {
	externalID := "no external id"
	if p.ExternalID != "" {
		externalID = "external id set"
	}

	return fmt.Sprintf("{ID:%s AccountID:%s RoleArn:%s ExternalID:%s SubnetID:%s VpcID:%s}", p.ID, p.AccountID, p.RoleArn, externalID, p.SubnetID, p.VpcID)
}

// EnvironmentTypeConfig holds the runbook parameters an administrator attached to an environment type.
type EnvironmentTypeConfig struct {
	ID                string            `json:"id"`
	EnvironmentTypeID string            `json:"environmentTypeId"`
	Params            map[string]string `json:"params"`
}

type DelegatedCredentials struct {
	RoleArn         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

func (c DelegatedCredentials) String() string {
	return fmt.Sprintf("{RoleArn:%s Expiration:%s}", c.RoleArn, c.Expiration.Format(time.RFC3339))
}

// DataSetMount describes a data set made reachable from an environment.
// AccessPointName is set when the mount was granted through a dedicated access point.
type DataSetMount struct {
	ID              string `json:"id"`
	Bucket          string `json:"bucket"`
	Prefix          string `json:"prefix"`
	KMSArn          string `json:"kmsArn,omitempty"`
	Writeable       bool   `json:"writeable"`
	AccessPointName string `json:"accessPointName,omitempty"`
	AccessPointArn  string `json:"accessPointArn,omitempty"`
}

type WorkflowOutputs struct {
	InstanceID  string
	InstanceArn string
}

// Transition records one applied status change.
type Transition struct {
	EnvironmentID  string
	Operation      Operation
	From           Status
	To             Status
	EventTimestamp time.Time
	AppliedAt      time.Time
}
