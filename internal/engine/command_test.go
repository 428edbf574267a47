package engine

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		want Command
	}{
		{"list-workflows", CommandListWorkflows},
		{"list_workflows", CommandListWorkflows},
		{"  list-workflows  ", CommandListWorkflows},
		{"delete-runs", CommandDeleteRuns},
		{"delete-workflow-runs", CommandDeleteRuns},
		{"delete_workflow_runs", CommandDeleteRuns},
	}
	for _, tc := range cases {
		got, err := ParseCommand(tc.in)
		if err != nil {
			t.Errorf("ParseCommand(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	for _, in := range []string{"", "list", "delete", "LIST-WORKFLOWS", "rm -rf"} {
		if cmd, err := ParseCommand(in); err == nil {
			t.Errorf("ParseCommand(%q) = %v, want error", in, cmd)
		}
	}
}

func TestCommandString(t *testing.T) {
	if CommandListWorkflows.String() != "list-workflows" {
		t.Errorf("String() = %q", CommandListWorkflows.String())
	}
	if CommandDeleteRuns.String() != "delete-runs" {
		t.Errorf("String() = %q", CommandDeleteRuns.String())
	}
	if CommandNone.String() != "none" {
		t.Errorf("String() = %q", CommandNone.String())
	}
}
