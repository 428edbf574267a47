package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Auth    Auth
	Target  Target
	Runtime Runtime
}

type Auth struct {
	// Token is the GitHub access token. Left empty, it is resolved from
	// GITHUB_TOKEN, the gh CLI, or an interactive no-echo prompt, in that
	// order. Never persisted.
	Token string
}

type Target struct {
	// Owner is the repository owner (see --owner). Prompted for when empty.
	Owner string

	// Repo is the repository name (see --repo). Prompted for when empty.
	Repo string

	// WorkflowID selects the workflow whose runs are deleted (see
	// --workflow). 0 means prompt; only the delete-runs command uses it.
	WorkflowID int64
}

type Runtime struct {
	// Verbose enables one log line per API request and response (see --verbose).
	Verbose bool

	// PerPage is the page-size hint sent on the first request of each
	// listing (see --per-page). Must be within 1..100, the API's ceiling.
	PerPage int

	// AssumeYes pre-answers the deletion confirmation (see --yes).
	AssumeYes bool
}

func New() *Config {
	return &Config{
		Runtime: Runtime{
			PerPage: 100,
		},
	}
}

// Validate checks everything knowable before the interactive session
// starts. Owner, repo and workflow id may legitimately still be empty
// here; they are prompted for later.
func (c *Config) Validate() error {
	if c.Runtime.PerPage < 1 || c.Runtime.PerPage > 100 {
		return fmt.Errorf("per-page must be within 1..100, got %d", c.Runtime.PerPage)
	}
	if err := validateRepoPart("owner", c.Target.Owner); err != nil {
		return err
	}
	if err := validateRepoPart("repo", c.Target.Repo); err != nil {
		return err
	}
	if c.Target.WorkflowID < 0 {
		return fmt.Errorf("workflow id must be positive, got %d", c.Target.WorkflowID)
	}
	return nil
}

func validateRepoPart(label, value string) error {
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, "/ \t") {
		return fmt.Errorf("%s %q must be a bare name, not a path", label, value)
	}
	return nil
}
