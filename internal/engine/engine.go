// Package engine drives the interactive session: command selection,
// target selection, then one of the two operations. The flow is linear
// with no way back; every answer is collected exactly once.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"runsweep/internal/config"
	gh "runsweep/internal/github"
	"runsweep/internal/output"
	"runsweep/internal/pagination"
	"runsweep/internal/prompt"
)

type Engine struct {
	client  *gh.Client
	console *output.Console
	prompt  *prompt.Prompter
	cfg     *config.Config
}

func New(client *gh.Client, console *output.Console, p *prompt.Prompter, cfg *config.Config) *Engine {
	if console == nil {
		console = output.New(nil)
	}
	if cfg == nil {
		cfg = config.New()
	}
	return &Engine{client: client, console: console, prompt: p, cfg: cfg}
}

// Run executes one session. A preselected command skips the command
// prompt; CommandNone asks for one, and an unrecognized name ends the
// session with an error and no request issued.
func (e *Engine) Run(ctx context.Context, cmd Command) error {
	if cmd == CommandNone {
		name, err := e.prompt.Line("Enter command (list-workflows / delete-runs): ")
		if err != nil {
			return err
		}
		cmd, err = ParseCommand(name)
		if err != nil {
			return err
		}
	}

	owner, repo, err := e.target()
	if err != nil {
		return err
	}

	switch cmd {
	case CommandListWorkflows:
		return e.ListWorkflows(ctx, owner, repo)
	case CommandDeleteRuns:
		workflowID, err := e.workflowID()
		if err != nil {
			return err
		}
		return e.DeleteWorkflowRuns(ctx, owner, repo, workflowID)
	default:
		return fmt.Errorf("no command selected")
	}
}

func (e *Engine) target() (owner, repo string, err error) {
	owner = e.cfg.Target.Owner
	if owner == "" {
		if owner, err = e.prompt.Line("Enter the repository owner: "); err != nil {
			return "", "", err
		}
	}
	if owner == "" {
		return "", "", fmt.Errorf("repository owner is required")
	}

	repo = e.cfg.Target.Repo
	if repo == "" {
		if repo, err = e.prompt.Line("Enter the repository name: "); err != nil {
			return "", "", err
		}
	}
	if repo == "" {
		return "", "", fmt.Errorf("repository name is required")
	}
	return owner, repo, nil
}

func (e *Engine) workflowID() (int64, error) {
	if e.cfg.Target.WorkflowID != 0 {
		return e.cfg.Target.WorkflowID, nil
	}
	raw, err := e.prompt.Line("Enter the workflow ID: ")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid workflow ID %q", raw)
	}
	return id, nil
}

func (e *Engine) perPage() url.Values {
	return url.Values{"per_page": []string{strconv.Itoa(e.cfg.Runtime.PerPage)}}
}

// collectPages paginates path and decodes every page body into a fresh
// value of P, returning the decoded payloads in server order. A halt
// mid-pagination is reported on the console; the pages already fetched
// are still decoded and returned so the operator can act on them (the
// batch is non-atomic anyway, and a re-run picks up the rest).
func collectPages[P any](ctx context.Context, e *Engine, what, path string) ([]P, error) {
	pages, err := pagination.Collect(ctx, e.client, path, e.perPage())
	if err != nil {
		e.console.Failf("failed to list %s: %v\n", what, err)
		if len(pages) == 0 {
			return nil, err
		}
		e.console.Printf("continuing with the %d page(s) fetched before the failure\n", len(pages))
	}

	payloads := make([]P, 0, len(pages))
	for _, page := range pages {
		var payload P
		if err := json.Unmarshal(page.Body, &payload); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", what, err)
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}
