package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

var launchFlags struct {
	environmentID           string
	projectID               string
	environmentTypeID       string
	environmentTypeConfigID string
}

// launchCmd represents the launch command
var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Create or re-initialize an environment and start its provisioning runbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := common.SetupSignalHandler(context.Background())

		orchestrator, s, closeFunc, err := createOrchestrator(ctx)
		if err != nil {
			return err
		}

		defer shutdown(closeFunc, "valkey")

		project, err := s.projects.GetProject(ctx, launchFlags.projectID)
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		env, err := orchestrator.Prepare(ctx, entity.Environment{
			ID:                      launchFlags.environmentID,
			ProjectID:               project.ID,
			EnvironmentTypeID:       launchFlags.environmentTypeID,
			EnvironmentTypeConfigID: launchFlags.environmentTypeConfigID,
		})
		if err != nil {
			return err
		}

		env, err = orchestrator.Kickoff(ctx, env, project)
		printEnvironment(cmd, env)

		return err
	},
}

func printEnvironment(cmd *cobra.Command, env entity.Environment) {
	if env.ID == "" {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "environment %s: %s\n", env.ID, env.Status)

	if env.Error != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  error %s: %s\n", env.Error.Type, env.Error.Value)
	}
}

func init() {
	flags := launchCmd.Flags()

	flags.StringVar(&launchFlags.environmentID, "environment-id", "", "environment id")
	flags.StringVar(&launchFlags.projectID, "project-id", "", "project owning the environment")
	flags.StringVar(&launchFlags.environmentTypeID, "type-id", "", "environment type id")
	flags.StringVar(&launchFlags.environmentTypeConfigID, "type-config-id", "", "environment type configuration id")

	for _, name := range []string{"environment-id", "project-id", "type-id", "type-config-id"} {
		_ = launchCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(launchCmd)
}
