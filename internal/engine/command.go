package engine

import (
	"fmt"
	"strings"
)

// Command is the closed set of operations the tool performs. Anything
// outside it terminates the session before a single request is issued.
type Command int

const (
	CommandNone Command = iota
	CommandListWorkflows
	CommandDeleteRuns
)

func (c Command) String() string {
	switch c {
	case CommandListWorkflows:
		return "list-workflows"
	case CommandDeleteRuns:
		return "delete-runs"
	default:
		return "none"
	}
}

// ParseCommand maps an interactively entered command name to a Command.
// The snake_case names of the original script are accepted as aliases.
func ParseCommand(name string) (Command, error) {
	switch strings.TrimSpace(name) {
	case "list-workflows", "list_workflows":
		return CommandListWorkflows, nil
	case "delete-runs", "delete-workflow-runs", "delete_workflow_runs":
		return CommandDeleteRuns, nil
	}
	return CommandNone, fmt.Errorf("unknown command %q (expected list-workflows or delete-runs)", strings.TrimSpace(name))
}
