package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/common/version"
	"github.com/spf13/cobra"

	"github.com/research-workspaces/env-lifecycle/internal/config"
	"github.com/research-workspaces/env-lifecycle/internal/log"
)

var (
	cfgFile string
	conf    *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "env-lifecycle",
	Short:        "Orchestrate the lifecycle of research environments",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		conf, err = config.Parse(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
		}

		// Init logger
		err = log.Init(conf.Logs)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}

		logger := log.Logger()

		// Dump generic information
		logger.Info("Starting env lifecycle",
			"command", cmd.Name(),
			"version", version.Info(),
			"buildContext", version.BuildContext(),
		)
		logger.V(1).Info("Using config", "config", fmt.Sprintf("%+v", conf))

		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, settings can be overridden with ENVLIFECYCLE_* variables")
}
