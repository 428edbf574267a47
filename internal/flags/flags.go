package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants avoids drift between Cobra flag wiring and
// other code paths that reference flags in messages or docs.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Targeting
	FlagOwner    = "owner"
	FlagRepo     = "repo"
	FlagWorkflow = "workflow"

	// Runtime
	FlagPerPage = "per-page"
	FlagYes     = "yes"
	FlagVerbose = "verbose"
)
