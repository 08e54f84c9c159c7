package geojson

import (
	"testing"

	"github.com/wewei/h3"
)

func TestCellToFeatureHasClosedRing(t *testing.T) {
	cell := h3.GeoToH3(h3.GeoCoord{Lat: h3.DegsToRads(37.775938728915946), Lon: h3.DegsToRads(-122.41795063018799)}, 9)
	feature := CellToFeature(cell)

	if !feature.Geometry.IsPolygon() {
		t.Fatal("CellToFeature did not produce a Polygon geometry")
	}
	ring := feature.Geometry.Polygon[0]
	if len(ring) < 4 {
		t.Fatalf("ring has %d points, want at least 4 (the minimum for a closed GeoJSON ring)", len(ring))
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		t.Errorf("ring is not closed: first %v, last %v", first, last)
	}

	idx, ok := feature.Properties["h3_index"]
	if !ok || idx != h3.H3ToString(cell) {
		t.Errorf("h3_index property = %v, want %s", idx, h3.H3ToString(cell))
	}
}

func TestCellsToFeatureCollectionCount(t *testing.T) {
	origin := h3.GeoToH3(h3.GeoCoord{Lat: h3.DegsToRads(37.775938728915946), Lon: h3.DegsToRads(-122.41795063018799)}, 9)
	cells := h3.KRing(origin, 1)
	fc := CellsToFeatureCollection(cells)
	if len(fc.Features) != len(cells) {
		t.Errorf("len(fc.Features) = %d, want %d", len(fc.Features), len(cells))
	}
}

func TestPolygonFromFeatureRoundTrip(t *testing.T) {
	cell := h3.GeoToH3(h3.GeoCoord{Lat: h3.DegsToRads(37.775938728915946), Lon: h3.DegsToRads(-122.41795063018799)}, 7)
	feature := CellToFeature(cell)

	polygon, err := PolygonFromFeature(feature)
	if err != nil {
		t.Fatalf("PolygonFromFeature returned error: %v", err)
	}
	boundary := h3.H3ToGeoBoundary(cell)
	if len(polygon.Exterior) != len(boundary.Verts) {
		t.Errorf("len(polygon.Exterior) = %d, want %d", len(polygon.Exterior), len(boundary.Verts))
	}
}

func TestLinkedPolygonToFeatureEmpty(t *testing.T) {
	if _, err := LinkedPolygonToFeature(nil); err != ErrEmptyPolygon {
		t.Errorf("LinkedPolygonToFeature(nil) error = %v, want ErrEmptyPolygon", err)
	}
}
