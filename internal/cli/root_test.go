package cli

import (
	"bytes"
	"strings"
	"testing"

	"runsweep/internal/flags"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	want := map[string]bool{
		"list-workflows": false,
		"delete-runs":    false,
		"version":        false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestPerPageDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup(flags.FlagPerPage)
	if flag == nil {
		t.Fatalf("flag %q not registered", flags.FlagPerPage)
	}
	if flag.DefValue != "100" {
		t.Fatalf("per-page default = %q, want 100", flag.DefValue)
	}
}

func TestDeleteRunsFlags(t *testing.T) {
	for _, name := range []string{flags.FlagWorkflow, flags.FlagYes} {
		if deleteRunsCmd.Flags().Lookup(name) == nil {
			t.Errorf("delete-runs is missing flag %q", name)
		}
	}
}

func TestSetBuildInfo(t *testing.T) {
	defer SetBuildInfo("dev", "unknown", "unknown")

	SetBuildInfo("1.2.3", "abc1234", "2026-08-25")
	version, commit, date := BuildInfo()
	if version != "1.2.3" || commit != "abc1234" || date != "2026-08-25" {
		t.Fatalf("BuildInfo() = %q %q %q", version, commit, date)
	}
	if rootCmd.Version != "1.2.3 (abc1234) 2026-08-25" {
		t.Fatalf("rootCmd.Version = %q", rootCmd.Version)
	}
}

func TestVersionCommandOutput(t *testing.T) {
	defer SetBuildInfo("dev", "unknown", "unknown")
	SetBuildInfo("1.2.3", "abc1234", "2026-08-25")

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	got := out.String()
	for _, want := range []string{"runsweep 1.2.3", "commit: abc1234", "built:  2026-08-25"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHelpMentionsAuthentication(t *testing.T) {
	if !strings.Contains(rootCmd.Long, "GITHUB_TOKEN") {
		t.Error("root help should document token resolution")
	}
	if !strings.Contains(rootCmd.Long, "never persisted") {
		t.Error("root help should state the token is not persisted")
	}
}
