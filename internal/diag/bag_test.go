package diag

import "testing"

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	loc := Loc{Path: "a.toml", Element: 0}
	if !bag.Add(NewError(ValRegisterOverlap, loc, "one")) {
		t.Fatalf("first Add rejected")
	}
	if !bag.Add(NewError(ValRegisterOverlap, loc, "two")) {
		t.Fatalf("second Add rejected")
	}
	if bag.Add(NewError(ValRegisterOverlap, loc, "three")) {
		t.Fatalf("Add beyond cap accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewWarning(ValEmptyRange, Loc{Path: "a.toml"}, "warn"))
	if bag.HasErrors() {
		t.Fatalf("warning counted as error")
	}
	bag.Add(NewError(ValRegisterOverlap, Loc{Path: "a.toml"}, "err"))
	if !bag.HasErrors() {
		t.Fatalf("error not detected")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(ValRegisterOverlap, Loc{Path: "b.toml", Element: 0}, "x"))
	bag.Add(NewError(ValRegisterOverlap, Loc{Path: "a.toml", Element: 3}, "y"))
	bag.Add(NewWarning(ValEmptyRange, Loc{Path: "a.toml", Element: 3}, "z"))
	bag.Add(NewError(ValRegisterOverlap, Loc{Path: "a.toml", Element: 1}, "w"))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Path != "a.toml" || items[0].Primary.Element != 1 {
		t.Fatalf("items[0] = %+v", items[0])
	}
	// Same location: error sorts before warning.
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("severity order wrong: %+v, %+v", items[1], items[2])
	}
	if items[3].Primary.Path != "b.toml" {
		t.Fatalf("items[3] = %+v", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	loc := Loc{Path: "a.toml", Element: 2}
	bag.Add(NewError(ValRegisterOverlap, loc, "dup"))
	bag.Add(NewError(ValRegisterOverlap, loc, "dup again"))
	bag.Add(NewError(ValRegisterOverlap, Loc{Path: "a.toml", Element: 5}, "other"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(ValRegisterOverlap, Loc{Path: "a.toml"}, "x"))
	b := NewBag(1)
	b.Add(NewError(ValRegisterOverlap, Loc{Path: "b.toml"}, "y"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestLocString(t *testing.T) {
	if got := (Loc{Path: "a.toml", Element: 3}).String(); got != "a.toml[3]" {
		t.Fatalf("Loc.String() = %q", got)
	}
	if got := (Loc{Path: "a.toml", Element: -1}).String(); got != "a.toml" {
		t.Fatalf("file-level Loc.String() = %q", got)
	}
}
