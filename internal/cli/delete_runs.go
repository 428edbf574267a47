package cli

import (
	"runsweep/internal/engine"
	"runsweep/internal/flags"

	"github.com/spf13/cobra"
)

var deleteRunsCmd = &cobra.Command{
	Use:   "delete-runs",
	Short: "Delete all runs of one workflow",
	Long: `Delete every recorded run of one workflow, sequentially, after an
explicit confirmation.

Deletion is not atomic: a failed run is reported and the batch moves on,
so a partial failure leaves a mix of deleted and remaining runs. Re-run
the command to sweep the remainder; runs already gone fail individually
and are reported without stopping anything.

Examples:
  # Prompt for the workflow ID and confirmation
  runsweep delete-runs --owner octocat --repo hello-world

  # No prompts at all
  runsweep delete-runs --owner octocat --repo hello-world --workflow 161335 --yes
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, engine.CommandDeleteRuns)
	},
}

func init() {
	rootCmd.AddCommand(deleteRunsCmd)
	deleteRunsCmd.Flags().Int64Var(&cfg.Target.WorkflowID, flags.FlagWorkflow, 0, "Workflow ID whose runs are deleted (prompted for when omitted)")
	deleteRunsCmd.Flags().BoolVar(&cfg.Runtime.AssumeYes, flags.FlagYes, false, "Skip the confirmation prompt (you are sure)")
}
