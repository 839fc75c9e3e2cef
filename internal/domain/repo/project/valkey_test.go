package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/valkey-io/valkey-go"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/project"
	"github.com/research-workspaces/env-lifecycle/internal/domain/repo/repotest"
)

type ValkeyProjectIntegrationTestSuite struct {
	suite.Suite

	client valkey.Client
	repo   project.ValkeyRepo
}

func (s *ValkeyProjectIntegrationTestSuite) SetupSuite() {
	t := s.T()

	container := repotest.StartValkey(t)
	s.client = repotest.CreateValkeyClient(t, container)
	s.repo = project.NewValkeyRepo(s.client)
}

func (s *ValkeyProjectIntegrationTestSuite) TearDownTest() {
	repotest.FlushValkey(s.T(), s.client)
}

func TestValkeyProjectIntegrationTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(ValkeyProjectIntegrationTestSuite))
}

func (s *ValkeyProjectIntegrationTestSuite) TestProject() {
	ctx := context.Background()
	t := s.T()

	expected := entity.Project{
		ID:         "project-1",
		AccountID:  "123456789012",
		RoleArn:    "arn:aws:iam::123456789012:role/env-lifecycle",
		ExternalID: "external",
		SubnetID:   "subnet-1",
		VpcID:      "vpc-1",
	}

	err := s.repo.SaveProject(ctx, expected)
	require.NoError(t, err, "failed to save project")

	res, err := s.repo.GetProject(ctx, "project-1")
	require.NoError(t, err, "failed to get project")
	assert.Equal(t, expected, res)

	_, err = s.repo.GetProject(ctx, "project-2")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func (s *ValkeyProjectIntegrationTestSuite) TestEnvironmentTypeConfig() {
	ctx := context.Background()
	t := s.T()

	expected := entity.EnvironmentTypeConfig{
		ID:                "small",
		EnvironmentTypeID: "ec2-linux",
		Params:            map[string]string{"InstanceType": "t3.small"},
	}

	err := s.repo.SaveEnvironmentTypeConfig(ctx, expected)
	require.NoError(t, err, "failed to save environment type config")

	res, err := s.repo.GetEnvironmentTypeConfig(ctx, "small")
	require.NoError(t, err, "failed to get environment type config")
	assert.Equal(t, expected, res)

	_, err = s.repo.GetEnvironmentTypeConfig(ctx, "large")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func (s *ValkeyProjectIntegrationTestSuite) TestCorruptedDocument() {
	ctx := context.Background()
	t := s.T()

	command := s.client.B().Set().Key("project:broken").Value("{not json").Build()
	err := s.client.Do(ctx, command).Error()
	require.NoError(t, err, "failed to write corrupted document")

	_, err = s.repo.GetProject(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}
