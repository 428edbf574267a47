package cli

import (
	"runsweep/internal/engine"

	"github.com/spf13/cobra"
)

var listWorkflowsCmd = &cobra.Command{
	Use:   "list-workflows",
	Short: "List the workflows of a repository with their IDs",
	Long: `List every workflow of a repository along with its numeric ID.

The ID is what delete-runs asks for. The listing follows Link-header
pagination until the collection is exhausted.

Examples:
  runsweep list-workflows --owner octocat --repo hello-world
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, engine.CommandListWorkflows)
	},
}

func init() {
	rootCmd.AddCommand(listWorkflowsCmd)
}
