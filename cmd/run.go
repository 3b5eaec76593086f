package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

var runParallelFlag int
var runTimeoutFlag time.Duration
var runTempRootFlag string
var runWarmCacheFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <batch.yaml>",
		Short: "Verify a batch of mutant and test pairs",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return currentWorkflow().Run(cmd.Context(), domain.RunArgs{
				Batch:    m.Path(args[0]),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Parallel: viper.GetInt(runParallelConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of executions verified concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().DurationVarP(&runTimeoutFlag, phaseTimeoutFlagName, "t", viper.GetDuration(phaseTimeoutConfigKey), "timeout of each build-and-test phase")
	bindFlagToConfig(cmd.Flags().Lookup(phaseTimeoutFlagName), phaseTimeoutConfigKey)

	cmd.Flags().StringVar(&runTempRootFlag, tempRootFlagName, viper.GetString(tempRootConfigKey), "directory for execution workspaces (default OS temp dir)")
	bindFlagToConfig(cmd.Flags().Lookup(tempRootFlagName), tempRootConfigKey)

	cmd.Flags().StringVar(&runWarmCacheFlag, warmCacheFlagName, viper.GetString(warmCacheConfigKey), "directory copied into every test project to avoid dependency downloads")
	bindFlagToConfig(cmd.Flags().Lookup(warmCacheFlagName), warmCacheConfigKey)
}
