// Package cmd provides the root command and CLI setup for snare.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snare.dev/pkg/snare/internal/adapter"
	"snare.dev/pkg/snare/internal/controller"
	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

var ui controller.UI
var batchLoader adapter.BatchLoader
var reportStore adapter.ReportStore

// workflow is built on first use so that flags and config are settled by then.
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd)
	batchLoader = adapter.NewBatchLoader()
	reportStore = adapter.NewReportStore()
}

const rootLongDescription = `Snare decides whether a generated test catches a mutant.

For every (mutant, test) pair of a batch it clones the project that owns the
mutated file into a disposable workspace, runs the test against the original
code, applies the mutant, and runs it again. A pair is a candidate catch only
when the test passes on the original and fails on the mutant.`

const runLongDescription = `Verify every pair of a batch file and write the report.

The batch is a YAML document with a repo_root and a list of items, each holding
a mutant and, optionally, a generated test.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "snare",
		Short:         "Mutant catch verification for generated tests",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for verdict reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(logFileFlag, verboseFlag)
	}

	// Interrupts cancel in-flight executions so their workspaces get removed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// currentWorkflow returns the workflow, wiring it from configuration when unset.
func currentWorkflow() domain.Workflow {
	if workflow == nil {
		workflow = newWorkflow(ui)
	}

	return workflow
}

func newWorkflow(ui controller.UI) domain.Workflow {
	fsAdapter := adapter.NewLocalWorkspaceFSAdapter(
		viper.GetStringSlice(manifestsConfigKey),
		adapter.WithSkipDirs(viper.GetStringSlice(skipDirsConfigKey)),
	)
	resolver := domain.NewProjectResolver(fsAdapter)

	engine := domain.NewEngine(
		fsAdapter,
		adapter.NewGoModAdapter(),
		adapter.NewLocalTestRunnerAdapter(viper.GetInt(maxOutputConfigKey)),
		resolver,
		engineConfig(),
	)

	var author adapter.TestAuthorAdapter
	if command := viper.GetStringSlice(authorCommandConfigKey); len(command) > 0 {
		author = adapter.NewCommandTestAuthorAdapter(
			command,
			viper.GetDuration(authorTimeoutConfigKey),
			viper.GetFloat64(authorRateConfigKey),
		)
	}

	gate := domain.NewGate(fsAdapter, adapter.NewGoSourceAdapter(), resolver, viper.GetInt(nonPublicQuotaConfigKey))
	ladder := domain.NewLadder()
	recovery := domain.NewRecoveryCoordinator(engine, author, fsAdapter, resolver, ladder)
	pipeline := domain.NewPipeline(gate, engine, recovery, ui, author, fsAdapter, resolver, ladder)

	return domain.NewWorkflow(batchLoader, reportStore, fsAdapter, ui, gate, pipeline)
}

func engineConfig() domain.EngineConfig {
	return domain.EngineConfig{
		TempRoot:            m.Path(viper.GetString(tempRootConfigKey)),
		Command:             viper.GetStringSlice(commandConfigKey),
		PhaseTimeout:        viper.GetDuration(phaseTimeoutConfigKey),
		WarmCache:           m.Path(viper.GetString(warmCacheConfigKey)),
		TimeoutCountsAsKill: viper.GetBool(timeoutCountsAsKillConfigKey),
	}
}
