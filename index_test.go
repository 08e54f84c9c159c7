package h3

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeoToH3RoundTrip(t *testing.T) {
	sf := GeoCoord{Lat: DegsToRads(37.775938728915946), Lon: DegsToRads(-122.41795063018799)}
	for res := 0; res <= 10; res++ {
		cell := GeoToH3(sf, res)
		if cell == 0 {
			t.Fatalf("GeoToH3 at res %d returned 0", res)
		}
		if !H3IsValid(cell) {
			t.Fatalf("GeoToH3 at res %d produced invalid index %s", res, H3ToString(cell))
		}
		if H3GetResolution(cell) != res {
			t.Errorf("resolution = %d, want %d", H3GetResolution(cell), res)
		}

		center := H3ToGeo(cell)
		back := GeoToH3(center, res)
		if back != cell {
			t.Errorf("res %d: GeoToH3(H3ToGeo(cell)) = %s, want %s", res, H3ToString(back), H3ToString(cell))
		}
	}
}

func TestH3ToGeoBoundaryVertexCount(t *testing.T) {
	sf := GeoCoord{Lat: DegsToRads(37.775938728915946), Lon: DegsToRads(-122.41795063018799)}
	cell := GeoToH3(sf, 9)
	boundary := H3ToGeoBoundary(cell)
	min := NumHexDirections
	if H3IsPentagon(cell) {
		min--
	}
	// H3ToGeoBoundary inserts an extra vertex per edge that crosses onto
	// a neighboring icosahedron face, so the count is a range, not an
	// exact match: at least the plain per-direction vertices, capped at
	// MaxCellBndryVerts.
	if len(boundary.Verts) < min || len(boundary.Verts) > MaxCellBndryVerts {
		t.Errorf("len(boundary.Verts) = %d, want between %d and %d", len(boundary.Verts), min, MaxCellBndryVerts)
	}
	for _, v := range boundary.Verts {
		if math.Abs(v.Lat) > math.Pi/2 {
			t.Errorf("boundary vertex latitude out of range: %v", v.Lat)
		}
	}
}

// TestH3ToGeoBoundaryDeterministic exercises go-cmp's deep structural
// comparison of a GeoBoundary's vertex slice: the same cell must
// produce identical boundaries (within geoCoordComparer's tolerance)
// across independent calls.
func TestH3ToGeoBoundaryDeterministic(t *testing.T) {
	sf := GeoCoord{Lat: DegsToRads(37.775938728915946), Lon: DegsToRads(-122.41795063018799)}
	cell := GeoToH3(sf, 9)
	a := H3ToGeoBoundary(cell)
	b := H3ToGeoBoundary(cell)
	if diff := cmp.Diff(a, b, geoCoordComparer); diff != "" {
		t.Errorf("H3ToGeoBoundary(cell) should be deterministic:\n%s", diff)
	}

	other := H3ToGeoBoundary(Neighbor(cell, IAxesDigit))
	if diff := cmp.Diff(a, other, geoCoordComparer); diff == "" {
		t.Error("boundaries of distinct cells should not be deeply equal")
	}
}

func TestH3ToParentAndChildren(t *testing.T) {
	sf := GeoCoord{Lat: DegsToRads(37.775938728915946), Lon: DegsToRads(-122.41795063018799)}
	cell := GeoToH3(sf, 9)
	parent := H3ToParent(cell, 7)
	if parent == 0 {
		t.Fatal("H3ToParent returned 0")
	}
	if H3GetResolution(parent) != 7 {
		t.Errorf("parent resolution = %d, want 7", H3GetResolution(parent))
	}

	children := H3ToChildren(parent, 9)
	found := false
	for _, c := range children {
		if c == H3ToParent(cell, 9) {
			found = true
		}
	}
	if !found {
		t.Errorf("children of parent(cell, 7) at res 9 do not include the cell's own res-9 ancestor")
	}

	if !H3IsPentagon(parent) {
		want := pow7(2)
		if int64(len(children)) != want {
			t.Errorf("len(children) = %d, want %d for a hexagon parent", len(children), want)
		}
	}
}

func TestH3ToParentOutOfRange(t *testing.T) {
	cell := GeoToH3(GeoCoord{Lat: 0, Lon: 0}, 5)
	if p := H3ToParent(cell, 6); p != 0 {
		t.Errorf("H3ToParent with parentRes > res should return 0, got %s", H3ToString(p))
	}
	if p := H3ToParent(cell, -1); p != 0 {
		t.Errorf("H3ToParent with negative parentRes should return 0, got %s", H3ToString(p))
	}
}
