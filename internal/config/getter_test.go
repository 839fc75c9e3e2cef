package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/research-workspaces/env-lifecycle/internal/config"
)

const configFile = `
logs:
  level: 2
  encoder: json
kafka:
  broker:
    urls: kafka-0:9092,kafka-1:9092
    version: 3.6.0
  consumer:
    topic: environment-status
    group: env-lifecycle
valkey:
  url: valkey:6379
  db: 2
aws:
  region: us-east-1
  mainAccountId: "111122223333"
automation:
  launchRunbook: Workspaces-LaunchEC2
`

// viper keeps global state, the whole scenario runs in a single test.
func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configFile), 0o600))

	t.Setenv("ENVLIFECYCLE_AUTOMATION_TERMINATERUNBOOK", "Workspaces-TerminateEC2")

	conf, err := config.Parse(path)
	require.NoError(t, err)

	assert := assert.New(t)

	assert.Equal(2, conf.Logs.Level)
	assert.Equal(config.EncoderTypeJson, conf.Logs.Encoder)
	assert.Equal("kafka-0:9092,kafka-1:9092", conf.Kafka.Broker.URLs)
	assert.Equal("111122223333", conf.AWS.MainAccountID)

	msg := "file value wins over default"
	assert.Equal("Workspaces-LaunchEC2", conf.Automation.LaunchRunbook, msg)

	msg = "env value wins over default"
	assert.Equal("Workspaces-TerminateEC2", conf.Automation.TerminateRunbook, msg)

	msg = "defaults are applied"
	assert.Equal(8*time.Second, conf.DefaultTimeout, msg)
	assert.Equal("LaunchInstance.InstanceId", conf.Automation.Outputs.InstanceID, msg)
	assert.EqualValues(5, conf.Reconciler.Conflict.MaxAttempt, msg)
	assert.Equal(5*time.Minute, conf.Reconciler.LateThreshold, msg)
	assert.Equal("env-lifecycle", conf.Valkey.ClientName, msg)
	assert.Equal(2, conf.Valkey.DB)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		DefaultTimeout: time.Second,
		Automation: config.Automation{
			LaunchRunbook:    "launch",
			TerminateRunbook: "terminate",
			Outputs:          config.AutomationOutputs{InstanceID: "Step.InstanceId"},
		},
	}

	type testCase struct {
		name   string
		mutate func(*config.Config)
		valid  bool
	}

	cases := []testCase{
		{name: "valid", mutate: func(*config.Config) {}, valid: true},
		{name: "no timeout", mutate: func(c *config.Config) { c.DefaultTimeout = 0 }},
		{name: "no launch runbook", mutate: func(c *config.Config) { c.Automation.LaunchRunbook = "" }},
		{name: "no terminate runbook", mutate: func(c *config.Config) { c.Automation.TerminateRunbook = "" }},
		{name: "no instance output", mutate: func(c *config.Config) { c.Automation.Outputs.InstanceID = "" }},
	}

	for i := range cases {
		c := cases[i]

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			conf := valid
			c.mutate(&conf)

			err := conf.Validate()
			assert.Equal(t, c.valid, err == nil, err)
		})
	}
}
