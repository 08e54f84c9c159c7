package h3

import "testing"

func TestCompactUncompactRoundTrip(t *testing.T) {
	origin := testOrigin(t)
	parent := H3ToParent(origin, 7)
	children := H3ToChildren(parent, 9)
	if H3IsPentagon(parent) {
		t.Skip("fixture parent is a pentagon, sibling-group size differs")
	}

	compacted, status := Compact(children)
	if status != CompactOK {
		t.Fatalf("Compact returned status %d", status)
	}
	if len(compacted) != 1 || compacted[0] != parent {
		t.Fatalf("Compact(full child set) = %v, want [%s]", compacted, H3ToString(parent))
	}

	uncompacted, status := Uncompact(compacted, 9)
	if status != CompactOK {
		t.Fatalf("Uncompact returned status %d", status)
	}
	if len(uncompacted) != len(children) {
		t.Errorf("len(uncompacted) = %d, want %d", len(uncompacted), len(children))
	}
	want := make(map[CellIndex]bool, len(children))
	for _, c := range children {
		want[c] = true
	}
	for _, c := range uncompacted {
		if !want[c] {
			t.Errorf("uncompacted cell %s not in original child set", H3ToString(c))
		}
	}
}

func TestCompactRejectsDuplicates(t *testing.T) {
	origin := testOrigin(t)
	_, status := Compact([]CellIndex{origin, origin})
	if status != CompactErrDuplicateInput {
		t.Errorf("Compact(duplicates) status = %d, want %d", status, CompactErrDuplicateInput)
	}
}

func TestCompactPartialGroupUnchanged(t *testing.T) {
	origin := testOrigin(t)
	parent := H3ToParent(origin, 7)
	children := H3ToChildren(parent, 9)
	if len(children) < 2 {
		t.Skip("not enough children to drop one")
	}
	partial := children[:len(children)-1]
	compacted, status := Compact(partial)
	if status != CompactOK {
		t.Fatalf("Compact returned status %d", status)
	}
	// Dropping the last child leaves only its own res-8 sibling group
	// one short: that group's 6 remaining cells stay as they are, and
	// every other, complete group of 7 compacts to its res-8 parent.
	want := (len(children)/7 - 1) + 6
	if len(compacted) != want {
		t.Errorf("only the partial group should stay unmerged: got %d cells, want %d", len(compacted), want)
	}
}

func TestMaxUncompactSizeRejectsFinerThanRes(t *testing.T) {
	origin := testOrigin(t)
	if size := MaxUncompactSize([]CellIndex{origin}, 5); size != -1 {
		t.Errorf("MaxUncompactSize(res9 cell, targetRes=5) = %d, want -1", size)
	}
}
