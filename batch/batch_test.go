package batch

import (
	"math"
	"testing"

	"github.com/wewei/h3"
)

func TestCartesianBatchMatchesScalar(t *testing.T) {
	lats := []float64{0, math.Pi / 4, -math.Pi / 6, 1.0}
	lons := []float64{0, math.Pi / 3, -math.Pi / 2, 2.5}
	n := len(lats)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)

	CartesianBatch(lats, lons, xs, ys, zs)

	for i := 0; i < n; i++ {
		wantX := math.Cos(lats[i]) * math.Cos(lons[i])
		wantY := math.Cos(lats[i]) * math.Sin(lons[i])
		wantZ := math.Sin(lats[i])
		if math.Abs(xs[i]-wantX) > 1e-9 || math.Abs(ys[i]-wantY) > 1e-9 || math.Abs(zs[i]-wantZ) > 1e-9 {
			t.Errorf("point %d: got (%v,%v,%v), want (%v,%v,%v)", i, xs[i], ys[i], zs[i], wantX, wantY, wantZ)
		}
	}
}

func TestGeoToH3BatchMatchesScalar(t *testing.T) {
	lats := []float64{h3.DegsToRads(37.775938728915946), h3.DegsToRads(40.689167)}
	lons := []float64{h3.DegsToRads(-122.41795063018799), h3.DegsToRads(-74.044444)}
	out := make([]h3.CellIndex, len(lats))

	GeoToH3(lats, lons, 9, out)

	for i := range lats {
		want := h3.GeoToH3(h3.GeoCoord{Lat: lats[i], Lon: lons[i]}, 9)
		if out[i] != want {
			t.Errorf("point %d: GeoToH3 batch = %s, want %s", i, h3.H3ToString(out[i]), h3.H3ToString(want))
		}
	}
}

func TestH3ToGeoBatchMatchesScalar(t *testing.T) {
	cell := h3.GeoToH3(h3.GeoCoord{Lat: h3.DegsToRads(37.775938728915946), Lon: h3.DegsToRads(-122.41795063018799)}, 9)
	cells := []h3.CellIndex{cell}
	lats := make([]float64, 1)
	lons := make([]float64, 1)

	H3ToGeo(cells, lats, lons)

	want := h3.H3ToGeo(cell)
	if lats[0] != want.Lat || lons[0] != want.Lon {
		t.Errorf("H3ToGeo batch = (%v,%v), want (%v,%v)", lats[0], lons[0], want.Lat, want.Lon)
	}
}
