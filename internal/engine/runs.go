package engine

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v81/github"
)

// DeleteWorkflowRuns lists every run of the given workflow, asks for an
// explicit confirmation, then deletes the runs one by one in listing
// order. One run's failure is reported and never aborts the batch; the
// batch is not atomic, and re-running the command is the recovery path
// for whatever remains.
func (e *Engine) DeleteWorkflowRuns(ctx context.Context, owner, repo string, workflowID int64) error {
	path := fmt.Sprintf("/repos/%s/%s/actions/workflows/%d/runs", owner, repo, workflowID)
	payloads, err := collectPages[github.WorkflowRuns](ctx, e, "workflow runs", path)
	if err != nil {
		return err
	}

	var runs []*github.WorkflowRun
	for _, payload := range payloads {
		runs = append(runs, payload.WorkflowRuns...)
	}

	if len(runs) == 0 {
		e.console.Printf("No workflow runs found.\n")
		return nil
	}

	if !e.cfg.Runtime.AssumeYes {
		e.console.Printf("\nAre you sure you want to delete all %d workflow runs?\n", len(runs))
		confirmed, err := e.prompt.Confirm("This action cannot be undone! (y/n): ")
		if err != nil {
			return err
		}
		if !confirmed {
			e.console.Printf("Aborted.\n")
			return nil
		}
	}

	deleted, failed := 0, 0
	for _, run := range runs {
		runPath := fmt.Sprintf("/repos/%s/%s/actions/runs/%d", owner, repo, run.GetID())
		resp, err := e.client.Delete(ctx, runPath, nil)
		if err != nil {
			// Transport-level failure: reported like a failed status so one
			// unreachable run doesn't strand the rest of a confirmed batch.
			failed++
			e.console.Failf("failed to delete run %d: %v\n", run.GetID(), err)
			continue
		}
		if resp.StatusCode == http.StatusNoContent {
			deleted++
			e.console.Successf("deleted run %d\n", run.GetID())
			continue
		}
		failed++
		e.console.Failf("failed to delete run %d: status %d\n%s\n", run.GetID(), resp.StatusCode, resp.Body)
	}

	e.console.Printf("\nDone. %d deleted, %d failed.\n", deleted, failed)
	return nil
}
