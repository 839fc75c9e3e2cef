package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/research-workspaces/env-lifecycle/internal/common"
	"github.com/research-workspaces/env-lifecycle/internal/domain/entity"
)

// seedFile holds the reference data the lifecycle commands read.
type seedFile struct {
	Projects               []entity.Project                 `json:"projects"`
	EnvironmentTypeConfigs []entity.EnvironmentTypeConfig   `json:"environmentTypeConfigs"`
	Mounts                 map[string][]entity.DataSetMount `json:"mounts"`
}

var seedPath string

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load projects, environment type configurations and data set mounts into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := common.SetupSignalHandler(context.Background())

		b, err := os.ReadFile(seedPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", seedPath, err)
		}

		seed := seedFile{}

		err = json.Unmarshal(b, &seed)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", seedPath, err)
		}

		s, closeFunc, err := createStores(ctx, clockwork.NewRealClock())
		if err != nil {
			return err
		}

		defer shutdown(closeFunc, "valkey")

		for _, project := range seed.Projects {
			err = s.projects.SaveProject(ctx, project)
			if err != nil {
				return err
			}
		}

		for _, typeConfig := range seed.EnvironmentTypeConfigs {
			err = s.projects.SaveEnvironmentTypeConfig(ctx, typeConfig)
			if err != nil {
				return err
			}
		}

		for environmentID, mounts := range seed.Mounts {
			for _, mount := range mounts {
				err = s.mounts.SaveMount(ctx, environmentID, mount)
				if err != nil {
					return err
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d projects, %d environment type configurations, mounts of %d environments\n",
			len(seed.Projects), len(seed.EnvironmentTypeConfigs), len(seed.Mounts))

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "file", "", "json seed file")
	_ = seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(seedCmd)
}
