package cmd

import (
	"github.com/spf13/cobra"

	"snare.dev/pkg/snare/internal/domain"
	m "snare.dev/pkg/snare/internal/model"
)

// gateCmd represents the gate command.
var gateCmd = newGateCmd()

func newGateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate <batch.yaml>",
		Short: "Validate the mutants of a batch without running tests",
		Long: `Apply the mutant validation gate to every mutant of a batch and print which
ones would be accepted. No workspace is created and no test is run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return currentWorkflow().Gate(cmd.Context(), domain.GateArgs{Batch: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(gateCmd)
}
