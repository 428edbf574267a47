package engine

import (
	"context"
	"fmt"

	"github.com/google/go-github/v81/github"
)

// ListWorkflows prints every workflow of owner/repo with its numeric ID,
// followed by a total. The listing paginates until the Link header
// carries no rel="next".
func (e *Engine) ListWorkflows(ctx context.Context, owner, repo string) error {
	path := fmt.Sprintf("/repos/%s/%s/actions/workflows", owner, repo)
	payloads, err := collectPages[github.Workflows](ctx, e, "workflows", path)
	if err != nil {
		return err
	}

	var workflows []*github.Workflow
	for _, payload := range payloads {
		workflows = append(workflows, payload.Workflows...)
	}

	if len(workflows) == 0 {
		e.console.Printf("No workflows found.\n")
		return nil
	}

	e.console.Headerf("\nWorkflow ID\tWorkflow Name\n\n")
	for _, wf := range workflows {
		e.console.Printf("%d\t%s\n", wf.GetID(), wf.GetName())
	}
	e.console.Printf("\nTotal: %d\n", len(workflows))
	return nil
}
