package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
	"github.com/research-workspaces/env-lifecycle/internal/lifecycle"
)

type lifecycleCommand func(o lifecycle.Orchestrator, ctx context.Context, environmentID string) (entity.Environment, error)

// newLifecycleCmd builds the commands acting on an existing environment.
func newLifecycleCmd(use, short string, run lifecycleCommand) *cobra.Command {
	var environmentID string

	ret := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := common.SetupSignalHandler(context.Background())

			orchestrator, _, closeFunc, err := createOrchestrator(ctx)
			if err != nil {
				return err
			}

			defer shutdown(closeFunc, "valkey")

			env, err := run(orchestrator, ctx, environmentID)
			printEnvironment(cmd, env)

			return err
		},
	}

	ret.Flags().StringVar(&environmentID, "environment-id", "", "environment id")
	_ = ret.MarkFlagRequired("environment-id")

	return ret
}

func init() {
	rootCmd.AddCommand(
		newLifecycleCmd("terminate", "Start the termination runbook and release the data set access points", lifecycle.Orchestrator.Terminate),
		newLifecycleCmd("start", "Start the instance of an environment", lifecycle.Orchestrator.Start),
		newLifecycleCmd("stop", "Stop the instance of an environment", lifecycle.Orchestrator.Stop),
	)
}
