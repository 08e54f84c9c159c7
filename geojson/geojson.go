// Package geojson converts between this library's cell and polygon
// types and RFC 7946 GeoJSON features, using paulmach/go.geojson for
// encoding and decoding.
package geojson

import (
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/wewei/h3"
)

// ErrEmptyPolygon is returned when a LinkedGeoPolygon chain or a
// geojson Polygon geometry has no usable ring.
var ErrEmptyPolygon = errors.New("geojson: polygon has no rings")

// CellToFeature encodes a single cell's boundary as a GeoJSON Polygon
// feature, with the cell's canonical string index carried in the
// feature's properties.
func CellToFeature(cell h3.CellIndex) *geojson.Feature {
	boundary := h3.H3ToGeoBoundary(cell)
	ring := make([][]float64, 0, len(boundary.Verts)+1)
	for _, v := range boundary.Verts {
		ring = append(ring, []float64{h3.RadsToDegs(v.Lon), h3.RadsToDegs(v.Lat)})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}

	f := geojson.NewPolygonFeature([][][]float64{ring})
	f.SetProperty("h3_index", h3.H3ToString(cell))
	return f
}

// CellsToFeatureCollection encodes a slice of cells as a
// FeatureCollection of individual cell-boundary polygons.
func CellsToFeatureCollection(cells []h3.CellIndex) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range cells {
		fc.AddFeature(CellToFeature(c))
	}
	return fc
}

// LinkedPolygonToFeature encodes one node of an H3SetToLinkedGeo
// result (its loop chain: outer boundary plus holes) as a single
// GeoJSON Polygon feature.
func LinkedPolygonToFeature(poly *h3.LinkedGeoPolygon) (*geojson.Feature, error) {
	if poly == nil || poly.First == nil {
		return nil, ErrEmptyPolygon
	}

	var rings [][][]float64
	for loop := poly.First; loop != nil; loop = loop.Next {
		var ring [][]float64
		var first *h3.LinkedGeoCoord
		for c := loop.First; c != nil; c = c.Next {
			if first == nil {
				first = c
			}
			ring = append(ring, []float64{h3.RadsToDegs(c.Vertex.Lon), h3.RadsToDegs(c.Vertex.Lat)})
		}
		if first != nil && len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	if len(rings) == 0 {
		return nil, ErrEmptyPolygon
	}
	return geojson.NewPolygonFeature(rings), nil
}

// PolygonFromFeature decodes a GeoJSON Polygon feature into this
// library's Polygon input type (degrees to radians, and the closing
// vertex each GeoJSON ring repeats is dropped).
func PolygonFromFeature(f *geojson.Feature) (h3.Polygon, error) {
	if f == nil || f.Geometry == nil || !f.Geometry.IsPolygon() {
		return h3.Polygon{}, errors.New("geojson: feature is not a Polygon geometry")
	}
	rings := f.Geometry.Polygon
	if len(rings) == 0 {
		return h3.Polygon{}, ErrEmptyPolygon
	}

	toLoop := func(ring [][]float64) []h3.GeoCoord {
		n := len(ring)
		if n > 1 && ring[0][0] == ring[n-1][0] && ring[0][1] == ring[n-1][1] {
			n--
		}
		loop := make([]h3.GeoCoord, n)
		for i := 0; i < n; i++ {
			loop[i] = h3.GeoCoord{Lat: h3.DegsToRads(ring[i][1]), Lon: h3.DegsToRads(ring[i][0])}
		}
		return loop
	}

	polygon := h3.Polygon{Exterior: toLoop(rings[0])}
	for _, hole := range rings[1:] {
		polygon.Holes = append(polygon.Holes, toLoop(hole))
	}
	return polygon, nil
}
