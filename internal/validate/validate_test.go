package validate

import (
	"math"
	"strings"
	"testing"

	"rootsig/internal/diag"
	"rootsig/internal/rootsig"
)

func clause(kind rootsig.ClauseKind, number, count, space uint32) rootsig.DescriptorTableClause {
	return rootsig.DescriptorTableClause{
		Kind:           kind,
		Reg:            rootsig.Register{Kind: kind.RegisterKind(), Number: number},
		NumDescriptors: count,
		Space:          space,
		Offset:         rootsig.OffsetAppend,
	}
}

func run(t *testing.T, elements []rootsig.RootElement) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(32)
	RootElements("sig.toml", elements, diag.BagReporter{Bag: bag})
	return bag
}

func TestNoConflictAcrossKindsAndSpaces(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseCBuffer, 0, 4, 0),
		clause(rootsig.ClauseSRV, 0, 4, 0),     // same numbers, different register file
		clause(rootsig.ClauseCBuffer, 0, 4, 1), // same numbers, different space
		rootsig.DescriptorTable{NumClauses: 3, Visibility: rootsig.VisibilityAll},
	})
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", bag.Items())
	}
}

func TestOverlapReported(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseSRV, 0, 20, 0),
		clause(rootsig.ClauseSRV, 5, 5, 0),
	})
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.ValRegisterOverlap || d.Severity != diag.SevError {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Primary.Element != 1 {
		t.Fatalf("primary element = %d, want 1", d.Primary.Element)
	}
	if !strings.Contains(d.Message, "t[5;9]") || !strings.Contains(d.Message, "t[0;19]") {
		t.Fatalf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || d.Notes[0].Loc.Element != 0 {
		t.Fatalf("notes = %+v, want one note at element 0", d.Notes)
	}
}

func TestOverlapBlamesFirstIntersection(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseUAV, 10, 3, 0), // u[10;12]
		clause(rootsig.ClauseUAV, 14, 3, 0), // u[14;16]
		clause(rootsig.ClauseUAV, 11, 5, 0), // u[11;15] overlaps both
	})
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if got := bag.Items()[0].Notes[0].Loc.Element; got != 0 {
		t.Fatalf("blamed element = %d, want 0 (leftmost intersection)", got)
	}
}

func TestTablesDoNotParticipate(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseCBuffer, 0, 1, 0),
		rootsig.DescriptorTable{NumClauses: 1, Visibility: rootsig.VisibilityPixel},
		clause(rootsig.ClauseCBuffer, 1, 1, 0),
		rootsig.DescriptorTable{NumClauses: 1, Visibility: rootsig.VisibilityVertex},
	})
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", bag.Items())
	}
}

func TestZeroDescriptorsDiagnosed(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseSampler, 0, 0, 0),
	})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ValEmptyRange {
		t.Fatalf("diagnostics = %v, want one ValEmptyRange", bag.Items())
	}
}

func TestRangeOverflowDiagnosed(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseSRV, math.MaxUint32, 2, 0),
	})
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ValRangeOverflow {
		t.Fatalf("diagnostics = %v, want one ValRangeOverflow", bag.Items())
	}
}

func TestAdjacentRangesDoNotConflict(t *testing.T) {
	bag := run(t, []rootsig.RootElement{
		clause(rootsig.ClauseCBuffer, 0, 10, 0),  // b[0;9]
		clause(rootsig.ClauseCBuffer, 10, 10, 0), // b[10;19]
	})
	if bag.Len() != 0 {
		t.Fatalf("adjacent ranges reported as conflict: %v", bag.Items())
	}
}
