package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const prefix = "ENVLIFECYCLE"

var conf Config

// Parse reads the configuration file given as parameter.
func Parse(confFile string) (*Config, error) {
	setDefault()

	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)

		err := viper.ReadInConfig()
		if err != nil {
			return &conf, fmt.Errorf("failed to read config file %v: %w", confFile, err)
		}
	}

	err := viper.Unmarshal(&conf)
	if err != nil {
		return &conf, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = conf.Validate()
	if err != nil {
		return &conf, fmt.Errorf("invalid config: %w", err)
	}

	return &conf, nil
}

// Validate checks the settings every command relies on.
func (c Config) Validate() error {
	if c.DefaultTimeout <= 0 {
		return fmt.Errorf("defaultTimeout must be positive, got %v", c.DefaultTimeout)
	}

	if c.Automation.LaunchRunbook == "" || c.Automation.TerminateRunbook == "" {
		return fmt.Errorf("automation runbooks must be set")
	}

	if c.Automation.Outputs.InstanceID == "" {
		return fmt.Errorf("automation.outputs.instanceId must be set")
	}

	return nil
}

func setDefault() {
	viper.SetDefault("logs.level", 4)
	viper.SetDefault("logs.encoder", EncoderTypeConsole)
	viper.SetDefault("defaultTimeout", "8s")
	viper.SetDefault("gracefulDuration", "10s")
	viper.SetDefault("metrics.port", 7777)

	viper.SetDefault("kafka.broker.version", "3.6.0")
	viper.SetDefault("kafka.broker.creds.mechanism", "SCRAM-SHA-512")
	viper.SetDefault("kafka.consumer.group", "env-lifecycle")

	viper.SetDefault("valkey.clientName", "env-lifecycle")

	viper.SetDefault("automation.sessionPrefix", "env-lifecycle")
	viper.SetDefault("automation.launchRunbook", "EnvLifecycle-Launch")
	viper.SetDefault("automation.terminateRunbook", "EnvLifecycle-Terminate")
	viper.SetDefault("automation.outputs.instanceId", "LaunchInstance.InstanceId")
	viper.SetDefault("automation.outputs.instanceArn", "LaunchInstance.InstanceArn")
	viper.SetDefault("automation.poll.maxAttempt", 8)
	viper.SetDefault("automation.poll.delay", "500ms")
	viper.SetDefault("automation.poll.maxDelay", "15s")

	viper.SetDefault("reconciler.retry.maxAttempt", 3)
	viper.SetDefault("reconciler.retry.delay", "200ms")
	viper.SetDefault("reconciler.retry.maxDelay", "2s")
	viper.SetDefault("reconciler.conflict.maxAttempt", 5)
	viper.SetDefault("reconciler.conflict.delay", "20ms")
	viper.SetDefault("reconciler.conflict.maxDelay", "500ms")
	viper.SetDefault("reconciler.lateThreshold", "5m")
}
