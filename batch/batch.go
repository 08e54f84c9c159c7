// Package batch vectorizes the trigonometric hot path shared by
// GeoToH3 and H3ToGeo across a slice of points, the same
// batch-the-scalar-formula technique the teacher package uses for its
// coordinate transforms.
package batch

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/algo"

	"github.com/wewei/h3"
)

// CartesianBatch de-interleaves a slice of geographic points into unit
// sphere Cartesian coordinates using SIMD trig, the same
// sin/cos-then-combine kernel the teacher uses to convert LatLngs to
// Points. Callers that need a cheap nearest-face or nearest-neighbor
// prefilter over many points can reuse xs/ys/zs directly instead of
// re-deriving them per cell index.
func CartesianBatch(lats, lons, xs, ys, zs []float64) {
	size := min(len(lats), len(lons), len(xs), len(ys), len(zs))

	sinLat := make([]float64, size)
	cosLat := make([]float64, size)
	sinLon := make([]float64, size)
	cosLon := make([]float64, size)

	algo.SinTransform64(lats[:size], sinLat)
	algo.CosTransform64(lats[:size], cosLat)
	algo.SinTransform64(lons[:size], sinLon)
	algo.CosTransform64(lons[:size], cosLon)

	hwy.ProcessWithTail[float64](size,
		func(offset int) {
			vCosLat := hwy.Load(cosLat[offset:])
			vCosLon := hwy.Load(cosLon[offset:])
			vSinLon := hwy.Load(sinLon[offset:])
			vSinLat := hwy.Load(sinLat[offset:])

			vX := hwy.Mul(vCosLat, vCosLon)
			vY := hwy.Mul(vCosLat, vSinLon)

			hwy.Store(vX, xs[offset:])
			hwy.Store(vY, ys[offset:])
			hwy.Store(vSinLat, zs[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				xs[i] = cosLat[i] * cosLon[i]
				ys[i] = cosLat[i] * sinLon[i]
				zs[i] = sinLat[i]
			}
		},
	)
}

// GeoToH3 converts a slice of geographic points to cell indexes at
// resolution res. The heavy per-point trig is amortized via
// CartesianBatch; each point's nearest icosahedron face is then read
// straight off the batched xs/ys/zs via h3.NearestFace, so GeoToH3AtFace
// doesn't re-derive the same sin/cos a second time. Digit extraction
// past the face lookup is still scalar, since it is branch-heavy and
// does not vectorize well.
func GeoToH3(lats, lons []float64, res int, out []h3.CellIndex) {
	size := min(len(lats), len(lons), len(out))

	xs := make([]float64, size)
	ys := make([]float64, size)
	zs := make([]float64, size)
	CartesianBatch(lats[:size], lons[:size], xs, ys, zs)

	for i := 0; i < size; i++ {
		face := h3.NearestFace(xs[i], ys[i], zs[i])
		out[i] = h3.GeoToH3AtFace(h3.GeoCoord{Lat: lats[i], Lon: lons[i]}, res, face)
	}
}

// H3ToGeo decodes a slice of cell indexes to their center points,
// writing results into lats/lons (caller-owned, pre-sized per this
// library's buffer-ownership convention).
func H3ToGeo(cells []h3.CellIndex, lats, lons []float64) {
	size := min(len(cells), len(lats), len(lons))
	for i := 0; i < size; i++ {
		g := h3.H3ToGeo(cells[i])
		lats[i] = g.Lat
		lons[i] = g.Lon
	}
}
