package github

import "testing"

func TestParseLink_NextRelation(t *testing.T) {
	value := `<https://api.example.com/runs?page=2>; rel="next"`
	rels := ParseLink(value)
	if got := rels["next"]; got != "https://api.example.com/runs?page=2" {
		t.Fatalf("next = %q, want the exact URL", got)
	}
}

func TestParseLink_MultipleRelations(t *testing.T) {
	value := ` <https://api.example.com/runs?page=2>; rel="next" , <https://api.example.com/runs?page=9>; rel="last" `
	rels := ParseLink(value)
	if len(rels) != 2 {
		t.Fatalf("expected 2 relations, got %d: %v", len(rels), rels)
	}
	if rels["next"] != "https://api.example.com/runs?page=2" {
		t.Errorf("next = %q", rels["next"])
	}
	if rels["last"] != "https://api.example.com/runs?page=9" {
		t.Errorf("last = %q", rels["last"])
	}
}

func TestParseLink_AbsentOrEmpty(t *testing.T) {
	if rels := ParseLink(""); len(rels) != 0 {
		t.Fatalf("empty header: expected no relations, got %v", rels)
	}
	if rels := ParseLink("   "); len(rels) != 0 {
		t.Fatalf("blank header: expected no relations, got %v", rels)
	}
}

func TestParseLink_MalformedSegmentsSkipped(t *testing.T) {
	cases := []string{
		`https://api.example.com/runs?page=2; rel="next"`, // no angle brackets
		`<https://api.example.com/runs?page=2>`,           // no rel parameter
		`<>; rel="next"`,                                  // empty URL
		`<https://api.example.com/runs?page=2>; title="x"`,
	}
	for _, value := range cases {
		if rels := ParseLink(value); len(rels) != 0 {
			t.Errorf("ParseLink(%q) = %v, want nothing", value, rels)
		}
	}
}

func TestParseLink_MalformedSegmentDoesNotPoisonOthers(t *testing.T) {
	value := `garbage, <https://api.example.com/runs?page=2>; rel="next"`
	rels := ParseLink(value)
	if rels["next"] != "https://api.example.com/runs?page=2" {
		t.Fatalf("next = %q", rels["next"])
	}
	if len(rels) != 1 {
		t.Fatalf("expected only next, got %v", rels)
	}
}
