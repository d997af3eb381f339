package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"rootsig/internal/diag"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.ValRegisterOverlap,
		diag.Loc{Path: "sig.toml", Element: 2},
		"register range b[0;3] in space 0 overlaps b[2;5]").
		WithNote(diag.Loc{Path: "sig.toml", Element: 0}, "CBV at b2 bound here"))
	bag.Add(diag.NewWarning(diag.ValEmptyRange,
		diag.Loc{Path: "sig.toml", Element: 4},
		"SRV at t0 binds zero descriptors"))
	bag.Sort()
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleBag(), PrettyOpts{ShowNotes: true})
	out := sb.String()

	want := []string{
		"sig.toml[2]: ERROR RS2001: register range b[0;3] in space 0 overlaps b[2;5]",
		"  note: sig.toml[0]: CBV at b2 bound here",
		"sig.toml[4]: WARNING RS2002: SRV at t0 binds zero descriptors",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Fatalf("output missing %q:\n%s", line, out)
		}
	}
}

func TestPrettyWithoutNotes(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleBag(), PrettyOpts{})
	if strings.Contains(sb.String(), "note:") {
		t.Fatalf("notes rendered despite ShowNotes=false:\n%s", sb.String())
	}
}

func TestJSONOutput(t *testing.T) {
	var sb strings.Builder
	if err := JSON(&sb, sampleBag(), JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Code != "RS2001" || first.Location.Element != 2 || first.Location.File != "sig.toml" {
		t.Fatalf("first diagnostic = %+v", first)
	}
	if len(first.Notes) != 1 || first.Notes[0].Location.Element != 0 {
		t.Fatalf("first notes = %+v", first.Notes)
	}
}

func TestJSONTruncation(t *testing.T) {
	var sb strings.Builder
	if err := JSON(&sb, sampleBag(), JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d (want full count, truncated list)", out.Count, len(out.Diagnostics))
	}
}
