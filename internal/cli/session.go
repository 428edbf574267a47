package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"runsweep/internal/engine"
	gh "runsweep/internal/github"
	"runsweep/internal/output"
	"runsweep/internal/prompt"

	"github.com/spf13/cobra"
)

// runSession wires one interactive session: resolve a token, build the
// API client, then hand control to the engine with an optional
// preselected command.
func runSession(cmd *cobra.Command, preset engine.Command) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

	token, _, err := gh.ResolveAuthToken(ctx, cfg.Auth.Token)
	if err != nil {
		return fmt.Errorf("resolve auth token: %w", err)
	}
	if token == "" {
		if token, err = p.Secret("Enter your GitHub personal access token: "); err != nil {
			return err
		}
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("a GitHub access token is required (set GITHUB_TOKEN, run 'gh auth login', or enter one at the prompt)")
	}

	client, err := gh.NewClient(token, gh.WithVerbose(cfg.Runtime.Verbose, cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	console := output.New(cmd.OutOrStdout())
	return engine.New(client, console, p, cfg).Run(ctx, preset)
}
