package h3

import (
	"math"
	"sort"
)

// Polygon is a simple polygon input: an exterior loop plus zero or
// more hole loops, each an ordered sequence of GeoCoord.
type Polygon struct {
	Exterior []GeoCoord
	Holes    [][]GeoCoord
}

type geoBBox struct {
	minLat, maxLat, minLon, maxLon float64
}

// boundingBox returns loop's lat/lon extent, with longitude unwrapped
// relative to loop's first vertex so a loop straddling the antimeridian
// (e.g. lons 179, -179, -179, 179) produces its true, narrow width
// rather than the 360-degree-minus-that complement a raw min/max would
// give. minLon/maxLon may fall outside (-pi, pi]; callers that sweep
// this range (Polyfill, MaxPolyfillSize) pass the unwrapped values
// straight through, since the trig GeoToH3/pointInPolygon depend on is
// 2*pi-periodic and does not require a canonical-range longitude.
func boundingBox(loop []GeoCoord) geoBBox {
	bbox := geoBBox{minLat: math.Inf(1), maxLat: math.Inf(-1), minLon: math.Inf(1), maxLon: math.Inf(-1)}
	if len(loop) == 0 {
		return bbox
	}
	ref := loop[0].Lon
	for _, g := range loop {
		lon := unwrapLon(g.Lon, ref)
		if g.Lat < bbox.minLat {
			bbox.minLat = g.Lat
		}
		if g.Lat > bbox.maxLat {
			bbox.maxLat = g.Lat
		}
		if lon < bbox.minLon {
			bbox.minLon = lon
		}
		if lon > bbox.maxLon {
			bbox.maxLon = lon
		}
	}
	return bbox
}

// unwrapLon shifts lon by a multiple of 2*pi so it lies within pi of
// ref, resolving antimeridian wraparound before a linear interpolation
// is done against it.
func unwrapLon(lon, ref float64) float64 {
	for lon-ref > math.Pi {
		lon -= 2 * math.Pi
	}
	for lon-ref < -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

// rayCastInside reports whether p is strictly inside loop, using a
// standard even-odd ray cast with every vertex's longitude, and p's,
// unwrapped relative to the loop's first vertex to resolve antimeridian
// crossings. Points exactly on an edge are treated as outside.
func rayCastInside(p GeoCoord, loop []GeoCoord) bool {
	n := len(loop)
	if n < 3 {
		return false
	}
	inside := false
	ref := loop[0].Lon
	plon := unwrapLon(p.Lon, ref)
	j := n - 1
	for i := 0; i < n; i++ {
		vi := loop[i]
		vj := loop[j]
		loni := unwrapLon(vi.Lon, ref)
		lonj := unwrapLon(vj.Lon, ref)

		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			t := (p.Lat - vi.Lat) / (vj.Lat - vi.Lat)
			lonIntersect := loni + t*(lonj-loni)
			if plon < lonIntersect {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// pointInPolygon reports whether p is strictly inside polygon's
// exterior loop and strictly outside every hole.
func pointInPolygon(p GeoCoord, polygon Polygon) bool {
	if !rayCastInside(p, polygon.Exterior) {
		return false
	}
	for _, hole := range polygon.Holes {
		if rayCastInside(p, hole) {
			return false
		}
	}
	return true
}

// gridStep returns the lattice-spacing step (radians) used to sample
// candidate cell centers at resolution res.
func gridStep(res int) float64 {
	step := avgEdgeLengthKm[res] / earthRadiusKm
	if step <= 0 {
		step = 1e-9
	}
	return step
}

// MaxPolyfillSize returns a conservative upper bound on the number of
// cells Polyfill(polygon, res) can return: the polygon's bounding-box
// cell count.
func MaxPolyfillSize(polygon Polygon, res int) int {
	bbox := boundingBox(polygon.Exterior)
	step := gridStep(res)
	rows := int((bbox.maxLat-bbox.minLat)/step) + 2
	cols := int((bbox.maxLon-bbox.minLon)/step) + 2
	return rows*cols + 1
}

// Polyfill enumerates the cells at resolution res whose center lies
// strictly inside polygon's exterior loop and strictly outside every
// hole, by rasterizing candidate centers across the polygon's bounding
// box at the resolution's lattice spacing.
func Polyfill(polygon Polygon, res int) []CellIndex {
	if len(polygon.Exterior) < 3 {
		return nil
	}
	bbox := boundingBox(polygon.Exterior)
	step := gridStep(res)

	seen := make(map[CellIndex]bool)
	var out []CellIndex
	for lat := bbox.minLat; lat <= bbox.maxLat+step; lat += step {
		for lon := bbox.minLon; lon <= bbox.maxLon+step; lon += step {
			cell := GeoToH3(GeoCoord{Lat: lat, Lon: lon}, res)
			if cell == 0 || seen[cell] {
				continue
			}
			seen[cell] = true
			if pointInPolygon(H3ToGeo(cell), polygon) {
				out = append(out, cell)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
