package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snare.dev/pkg/snare/internal/adapter"
	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

var pruneOlderThanFlag time.Duration

// pruneCmd represents the prune command.
var pruneCmd = newPruneCmd()

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove workspaces left behind by interrupted runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tempRoot := m.Path(viper.GetString(tempRootConfigKey))
			if tempRoot == "" {
				tempRoot = adapter.DefaultTempRoot()
			}

			return currentWorkflow().Prune(cmd.Context(), domain.PruneArgs{
				TempRoot:  tempRoot,
				OlderThan: pruneOlderThanFlag,
			})
		},
	}

	cmd.Flags().DurationVar(&pruneOlderThanFlag, olderThanFlagName, defaultPruneOlderThan, "only remove workspaces older than this")

	return cmd
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
