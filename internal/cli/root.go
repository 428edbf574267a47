package cli

import (
	"fmt"
	"os"

	"runsweep/internal/config"
	"runsweep/internal/engine"
	"runsweep/internal/flags"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "runsweep",
	Short: "Bulk-delete GitHub Actions workflow runs",
	Long: `Runsweep bulk-deletes GitHub Actions workflow runs via the REST API.

A workflow with no remaining run references no longer appears in the
GitHub UI, so sweeping a workflow's runs effectively removes it.

Run without a subcommand, runsweep is fully interactive: it prompts for a
command (list-workflows / delete-runs), the repository owner and name, and
for delete-runs a workflow ID plus a yes/no confirmation. Subcommands
preselect the command, and flags pre-answer the remaining prompts.

Authentication:
  Runsweep uses a GitHub access token. It prefers GITHUB_TOKEN, then GitHub
  CLI authentication (gh auth token), and finally prompts for a token
  without echoing it. The token is never persisted.

Examples:
  # Fully interactive session
  runsweep

  # List workflows of a repository without prompts
  runsweep list-workflows --owner octocat --repo hello-world

  # Delete every run of workflow 161335, answering prompts up front
  runsweep delete-runs --owner octocat --repo hello-world --workflow 161335 --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, engine.CommandNone)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Log every GitHub API request and response to stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.Target.Owner, flags.FlagOwner, "", "Repository owner (prompted for when omitted)")
	rootCmd.PersistentFlags().StringVar(&cfg.Target.Repo, flags.FlagRepo, "", "Repository name (prompted for when omitted)")
	rootCmd.PersistentFlags().IntVar(&cfg.Runtime.PerPage, flags.FlagPerPage, cfg.Runtime.PerPage, "Page size hint for listings (1..100)")
	rootCmd.SilenceUsage = true
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
