package naming

import "testing"

func TestSafeNameIdempotent(t *testing.T) {
	cases := []string{
		"Deep Research Agent",
		"already_safe",
		"___leading-trailing___",
		"Mixed-CASE 123!",
		"",
		"日本語",
	}
	for _, c := range cases {
		once := SafeName(c)
		twice := SafeName(once)
		if once != twice {
			t.Fatalf("SafeName not idempotent for %q: once=%q twice=%q", c, once, twice)
		}
		for _, r := range once {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '_' {
				t.Fatalf("SafeName(%q) produced disallowed rune %q", c, r)
			}
		}
		if len(once) > 0 && (once[0] == '_' || once[len(once)-1] == '_') {
			t.Fatalf("SafeName(%q) = %q has leading/trailing underscore", c, once)
		}
	}
}

func TestSafeNameExamples(t *testing.T) {
	tests := map[string]string{
		"Deep Research Agent": "deep_research_agent",
		"apply-patch":         "apply_patch",
		"  spaced  ":          "spaced",
		"UPPER123":            "upper123",
	}
	for in, want := range tests {
		if got := SafeName(in); got != want {
			t.Errorf("SafeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToolName(t *testing.T) {
	if got := ToolName("agent_", "Deep Research"); got != "agent_deep_research" {
		t.Errorf("ToolName = %q", got)
	}
	if got := ToolName("", "Deep Research"); got != "deep_research" {
		t.Errorf("ToolName with empty prefix = %q", got)
	}
}
