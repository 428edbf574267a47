package github

import (
	"context"
	"testing"
)

func TestResolveAuthToken_ExplicitWins(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	tok, source, err := ResolveAuthToken(context.Background(), "  explicit-token  ")
	if err != nil {
		t.Fatalf("ResolveAuthToken: %v", err)
	}
	if tok != "explicit-token" {
		t.Fatalf("token = %q", tok)
	}
	if source != AuthTokenSourceExplicit {
		t.Fatalf("source = %q", source)
	}
}

func TestResolveAuthToken_EnvFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	tok, source, err := ResolveAuthToken(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveAuthToken: %v", err)
	}
	if tok != "env-token" {
		t.Fatalf("token = %q", tok)
	}
	if source != AuthTokenSourceEnv {
		t.Fatalf("source = %q", source)
	}
}

func TestResolveAuthToken_NoSources(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	// Empty PATH keeps the gh CLI out of the lookup chain.
	t.Setenv("PATH", t.TempDir())

	tok, source, err := ResolveAuthToken(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveAuthToken: %v", err)
	}
	if tok != "" || source != "" {
		t.Fatalf("expected no token, got %q from %q", tok, source)
	}
}
