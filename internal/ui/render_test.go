package ui

import (
	"strings"
	"testing"

	"rootsig/internal/rootsig"
)

func TestRenderSignatureGroupsOwnedClauses(t *testing.T) {
	clause := func(n uint32) rootsig.DescriptorTableClause {
		return rootsig.DescriptorTableClause{
			Kind:           rootsig.ClauseCBuffer,
			Reg:            rootsig.Register{Kind: rootsig.RegisterBuffer, Number: n},
			NumDescriptors: 1,
			Offset:         rootsig.OffsetAppend,
		}
	}
	out := RenderSignature("forward", []rootsig.RootElement{
		clause(0), clause(1),
		rootsig.DescriptorTable{NumClauses: 2, Visibility: rootsig.VisibilityAll},
		clause(7),
	})

	if !strings.HasPrefix(out, "forward") {
		t.Fatalf("missing header:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "DescriptorTable(numClauses = 2") {
		t.Fatalf("line 1 = %q", lines[1])
	}
	// Owned clauses are indented beneath the table, in declaration order.
	if !strings.HasPrefix(lines[2], "  ") || !strings.Contains(lines[2], "b0") {
		t.Fatalf("line 2 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "  ") || !strings.Contains(lines[3], "b1") {
		t.Fatalf("line 3 = %q", lines[3])
	}
	// The unowned clause stays at top level.
	if strings.HasPrefix(lines[4], "  ") || !strings.Contains(lines[4], "b7") {
		t.Fatalf("line 4 = %q", lines[4])
	}
}
