package h3

import "math"

// GeoToH3 finds the cell index of the resolution-res cell containing
// geographic point g.
func GeoToH3(g GeoCoord, res int) CellIndex {
	if res < 0 || res > maxResolution {
		return 0
	}
	fijk := geoToFaceIjk(g, res)
	return faceIjkToCellIndex(fijk, res)
}

// GeoToH3AtFace is GeoToH3 with g's owning icosahedron face already
// resolved by the caller (see NearestFace), for callers that have
// already paid for g's unit Cartesian coordinates elsewhere (e.g.
// h3/batch's SIMD sin/cos pass) and want to skip re-deriving them.
func GeoToH3AtFace(g GeoCoord, res, face int) CellIndex {
	if res < 0 || res > maxResolution {
		return 0
	}
	fijk := geoToFaceIjkAtFace(g, res, face)
	return faceIjkToCellIndex(fijk, res)
}

// H3ToGeo returns the center point of cell h.
func H3ToGeo(h CellIndex) GeoCoord {
	fijk := cellIndexToFaceIjk(h)
	return faceIjkToGeo(fijk, H3GetResolution(h))
}

// hexVertexAngle is the angular offset of vertex 0 of a cell's
// hexagonal boundary relative to its center, in the face-local hex
// plane.
const hexVertexAngle = math.Pi / 6.0

// hexVertexRadius is the distance from a triangular-lattice point to a
// Voronoi-cell vertex, for unit lattice spacing.
var hexVertexRadius = 1.0 / math.Sqrt(3)

// hexBoundaryVertex is one plain (pre-crossing) boundary vertex of a
// cell, in its home face's plane, tagged with the direction of the
// edge leading to the next vertex counter-clockwise.
type hexBoundaryVertex struct {
	plane Vec2d
	dir   int
}

// hexPlaneVertices returns h's plain per-direction boundary vertices
// (6 for a hexagon, 5 for a pentagon, omitting the deleted K
// direction), in its home face's plane, along with that face and the
// lattice-to-plane scale at h's resolution. Shared by H3ToGeoBoundary
// (which additionally inserts face-crossing vertices between these)
// and GetH3UnidirectionalEdgeBoundary (which needs exactly the two
// plain vertices bounding one edge, unaffected by any crossing
// insertion).
func hexPlaneVertices(h CellIndex) (verts []hexBoundaryVertex, scale float64, face int) {
	res := H3GetResolution(h)
	fijk := cellIndexToFaceIjk(h)
	center := ijkToHex2d(fijk.Coord)
	scale = resolutionScale(res)
	face = fijk.Face

	pentagon := H3IsPentagon(h)
	verts = make([]hexBoundaryVertex, 0, NumHexDirections)
	for k := 0; k < NumHexDirections; k++ {
		dir := k + 1
		if pentagon && dir == KAxesDigit {
			continue
		}
		angle := hexVertexAngle - float64(k)*math.Pi/3.0
		offset := Vec2d{X: hexVertexRadius * math.Sin(angle), Y: hexVertexRadius * math.Cos(angle)}
		verts = append(verts, hexBoundaryVertex{plane: center.Add(offset), dir: dir})
	}
	return verts, scale, face
}

// planeToGeo inverts the gnomonic projection of a face-plane point
// back to a geographic coordinate.
func planeToGeo(v Vec2d, face int, scale float64) GeoCoord {
	p := v.Scale(1.0 / scale)
	r := p.Mag()
	dist := math.Atan(r)
	az := math.Atan2(p.X, p.Y)
	return geoAzDistanceRads(faceCenterGeo[face], az, dist)
}

// H3ToGeoBoundary returns the boundary vertices of cell h, in
// counter-clockwise order: 6 vertices for a hexagon, 5 for a pentagon
// (the vertex adjacent to the deleted K direction is omitted), plus
// one inserted vertex per edge whose neighbor lives on a different
// icosahedron face, up to MaxCellBndryVerts total — the face-crossing
// vertices spec section 4.6 describes. The crossing point is
// approximated as the intersection of the edge segment with the ray
// from this cell's center toward the neighbor's center as projected
// into this cell's own face plane (see intersectPoint); this is a
// planar approximation, not a geodesically exact face-boundary
// intersection, consistent with section 1's "no geodesic-accuracy
// guarantee beyond the documented projection" non-goal.
func H3ToGeoBoundary(h CellIndex) GeoBoundary {
	verts, scale, face := hexPlaneVertices(h)
	n := len(verts)
	out := make([]GeoCoord, 0, MaxCellBndryVerts)
	for i, pv := range verts {
		out = append(out, planeToGeo(pv.plane, face, scale))
		if len(out)+(n-1-i) >= MaxCellBndryVerts {
			continue
		}
		nb := Neighbor(h, pv.dir)
		if nb == 0 {
			continue
		}
		nbFace := baseCellData[H3GetBaseCell(nb)].face
		if nbFace == face {
			continue
		}
		next := verts[(i+1)%n].plane
		nbPlane := projectOntoFace(H3ToGeo(nb), face, scale)
		crossing := intersectPoint(pv.plane, next, Vec2d{}, nbPlane)
		out = append(out, planeToGeo(crossing, face, scale))
	}
	return GeoBoundary{Verts: out}
}

// H3ToParent returns the ancestor of h at resolution parentRes, or 0
// if parentRes is out of 0..resolution(h).
func H3ToParent(h CellIndex, parentRes int) CellIndex {
	res := H3GetResolution(h)
	if parentRes < 0 || parentRes > res {
		return 0
	}
	p := setResolution(h, parentRes)
	for i := parentRes + 1; i <= maxResolution; i++ {
		p = setIndexDigit(p, i, unusedDigit)
	}
	return p
}

// pow7 returns 7^n for n >= 0.
func pow7(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 7
	}
	return r
}

// MaxH3ToChildrenSize returns the maximum number of descendants h can
// have at childRes; an exact bound when h is a hexagon, conservative
// when it is a pentagon (which has fewer).
func MaxH3ToChildrenSize(h CellIndex, childRes int) int64 {
	res := H3GetResolution(h)
	if childRes < res {
		return 0
	}
	return pow7(childRes - res)
}

// H3ToChildren enumerates every valid descendant of h at childRes.
func H3ToChildren(h CellIndex, childRes int) []CellIndex {
	res := H3GetResolution(h)
	if childRes < res || childRes > maxResolution {
		return nil
	}
	if childRes == res {
		return []CellIndex{h}
	}

	levels := childRes - res
	out := make([]CellIndex, 0, MaxH3ToChildrenSize(h, childRes))

	digits := make([]int, levels)
	var recurse func(level int)
	recurse = func(level int) {
		if level == levels {
			c := setResolution(h, childRes)
			for i := 0; i < levels; i++ {
				c = setIndexDigit(c, res+1+i, digits[i])
			}
			if H3IsValid(c) {
				out = append(out, c)
			}
			return
		}
		for d := CenterDigit; d <= IJAxesDigit; d++ {
			digits[level] = d
			recurse(level + 1)
		}
	}
	recurse(0)
	return out
}
