package h3

import "math"

// FaceIJK is a face-local hex lattice coordinate: an icosahedron face
// number plus a normalized (i,j,k) position on that face's substrate.
type FaceIJK struct {
	Face  int
	Coord CoordIJK
}

// resolutionScale returns the linear lattice-units-per-radian scale at
// resolution res: each aperture-7 subdivision shrinks edge length by
// sqrt(7), so resolution res is 7^(res/2) times finer than resolution
// 0.
func resolutionScale(res int) float64 {
	return math.Pow(math.Sqrt(7), float64(res)) / res0EdgeLenRads
}

// geoToFaceIjk projects a geographic coordinate to the nearest face's
// substrate at resolution res, via gnomonic projection centered on
// that face's geographic center.
func geoToFaceIjk(g GeoCoord, res int) FaceIJK {
	return geoToFaceIjkAtFace(g, res, nearestFace(g))
}

// geoToFaceIjkAtFace is geoToFaceIjk with the owning face already
// decided by the caller, letting a caller that already has g's unit
// Cartesian coordinates (e.g. from a batched sin/cos pass) skip
// re-deriving them inside nearestFace.
func geoToFaceIjkAtFace(g GeoCoord, res, face int) FaceIJK {
	center := faceCenterGeo[face]

	dist := pointDistRads(center, g)
	az := geoAzimuthRads(center, g)

	v := projectGnomonic(dist, az).Scale(resolutionScale(res))
	return FaceIJK{Face: face, Coord: hex2dToIjk(v)}
}

// projectGnomonic is the gnomonic projection of a point at angular
// distance dist and azimuth az from a face's tangent point onto that
// face's plane: planar radius is tan(angular distance) on the
// unit-radius tangent plane.
func projectGnomonic(dist, az float64) Vec2d {
	r := math.Tan(dist)
	return Vec2d{X: r * math.Sin(az), Y: r * math.Cos(az)}
}

// projectOntoFace projects g onto face's plane without rounding to
// the lattice, used to compare a point against a face it does not
// belong to (e.g. to locate where a cell boundary crosses into a
// neighboring face's substrate).
func projectOntoFace(g GeoCoord, face int, scale float64) Vec2d {
	center := faceCenterGeo[face]
	dist := pointDistRads(center, g)
	az := geoAzimuthRads(center, g)
	return projectGnomonic(dist, az).Scale(scale)
}

// faceIjkToGeo inverts geoToFaceIjk.
func faceIjkToGeo(f FaceIJK, res int) GeoCoord {
	v := ijkToHex2d(f.Coord).Scale(1.0 / resolutionScale(res))
	r := v.Mag()
	dist := math.Atan(r)
	az := math.Atan2(v.X, v.Y)
	return geoAzDistanceRads(faceCenterGeo[f.Face], az, dist)
}

// nearestFace returns the icosahedron face whose center is closest to
// g on the sphere.
func nearestFace(g GeoCoord) int {
	return nearestFaceToPoint(geoToVec3d(g))
}

// NearestFace returns the icosahedron face whose center is closest to
// the unit-sphere Cartesian point (x,y,z) (the same x=cos(lat)cos(lon),
// y=cos(lat)sin(lon), z=sin(lat) convention as geoToVec3d). Exported
// so a caller holding already-computed Cartesian coordinates for many
// points (e.g. h3/batch's SIMD sin/cos pass) can reuse them instead of
// paying for the trig a second time inside a per-point GeoToH3 call.
func NearestFace(x, y, z float64) int {
	return nearestFaceToPoint(Vec3d{X: x, Y: y, Z: z})
}

func nearestFaceToPoint(p Vec3d) int {
	best := 0
	bestDist := math.Inf(1)
	for f := 0; f < NumIcosaFaces; f++ {
		d := pointSquareDist(p, geoToVec3d(faceCenterGeo[f]))
		if d < bestDist {
			bestDist = d
			best = f
		}
	}
	return best
}

// scaledHome returns base cell bc's home coordinate scaled from
// resolution 0 down to resolution res, alternating the aperture-7
// rotation with the Class II/Class III parity of each level crossed.
func scaledHome(bc, res int) CoordIJK {
	c := baseCellData[bc].home
	for r := 1; r <= res; r++ {
		if r%2 == 1 {
			c = c.downAp7r()
		} else {
			c = c.downAp7()
		}
	}
	return c
}

// candidateBaseCells returns the base cells worth considering as the
// owner of a substrate position on face f: f's own cluster plus its
// synthetic neighbor faces' clusters (to resolve positions that have
// wandered off the edge of f's cluster).
func candidateBaseCells(f int) []int {
	cells := baseCellsOnFace(f)
	for _, nf := range faceNeighbors[f] {
		cells = append(cells, baseCellsOnFace(nf)...)
	}
	return cells
}

// maxFaceCrossingHops bounds the base-cell-to-base-cell walk
// resolveOwner performs when a substrate position has overflowed its
// starting face's own base-cell table.
const maxFaceCrossingHops = 4

// resolveOwner finds the base cell owning a face-f substrate position
// ijk at resolution res, and the net rotation (in 60-degree CCW steps)
// a coordinate picks up getting there. It reduces ijk to its
// resolution-0 scale via the same up-aperture operators faceIjkToCellIndex
// uses to extract digits, then walks faceIjkBaseCells (direct, no
// crossing) and neighbor60CCWRots (one hop per face crossing) — the
// table-driven "state machine over (face, overage-class)" spec section
// 4.7/4.9 describes, rather than a blind multi-face distance search.
// If the walk does not converge within maxFaceCrossingHops, it falls
// back to the original nearest-base-cell-by-distance search across f
// and its synthetic neighbor faces.
func resolveOwner(f int, ijk CoordIJK, res int) (bc, ownerFace, rotation int) {
	reduced := ijk
	for r := res; r >= 1; r-- {
		if r%2 == 1 {
			reduced = reduced.upAp7r()
		} else {
			reduced = reduced.upAp7()
		}
	}

	face := f
	cur := reduced
	totalRot := 0
	for hop := 0; hop <= maxFaceCrossingHops; hop++ {
		if inSmallRange(cur) {
			if entry := faceIjkBaseCells[face][cur.I][cur.J][cur.K]; entry.valid {
				return entry.baseCell, face, totalRot % NumHexDirections
			}
		}
		nf, rot, ok := crossFaceOverage(face, cur)
		if !ok {
			break
		}
		cur = cur.rotate60ccwN(rot).normalize()
		totalRot += rot
		face = nf
	}

	bc, ownerFace = resolveOwnerByDistance(f, ijk, res)
	return bc, ownerFace, 0
}

// inSmallRange reports whether every component of c fits the 0..2
// range faceIjkBaseCells indexes directly.
func inSmallRange(c CoordIJK) bool {
	return c.I >= 0 && c.I < 3 && c.J >= 0 && c.J < 3 && c.K >= 0 && c.K < 3
}

// crossFaceOverage picks the neighbor face a substrate position that
// overflowed face's own base-cell table crosses onto, plus the
// rotation to apply: the base cell on face whose home-plus-direction
// step lands nearest ijk, among the steps that leave face entirely.
func crossFaceOverage(face int, ijk CoordIJK) (nextFace, rotations int, ok bool) {
	cells := baseCellsOnFace(face)
	if len(cells) == 0 {
		return 0, 0, false
	}
	target := ijkToHex2d(ijk)
	bestBC, bestDir := cells[0], IAxesDigit
	bestDist := math.Inf(1)
	found := false
	for _, bcell := range cells {
		for d := KAxesDigit; d <= IJAxesDigit; d++ {
			nb := neighbor60CCWRots[bcell][d]
			if !nb.valid || baseCellData[nb.baseCell].face == face {
				continue
			}
			p := ijkToHex2d(baseCellData[bcell].home.add(unitVecs[d]))
			dx, dy := p.X-target.X, p.Y-target.Y
			dist := dx*dx + dy*dy
			if dist < bestDist {
				bestDist, bestBC, bestDir, found = dist, bcell, d, true
			}
		}
	}
	if !found {
		return 0, 0, false
	}
	nb := neighbor60CCWRots[bestBC][bestDir]
	return baseCellData[nb.baseCell].face, nb.rotations, true
}

// resolveOwnerByDistance is the fallback nearest-base-cell-by-distance
// search used when the table-driven hop walk in resolveOwner does not
// converge within its hop budget.
func resolveOwnerByDistance(f int, ijk CoordIJK, res int) (bc int, ownerFace int) {
	target := ijkToHex2d(ijk)
	bestDist := math.Inf(1)
	bc = baseCellsOnFace(f)[0]
	ownerFace = f
	for _, cand := range candidateBaseCells(f) {
		candFace := baseCellData[cand].face
		p := ijkToHex2d(scaledHome(cand, res))
		dx := p.X - target.X
		dy := p.Y - target.Y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			bc = cand
			ownerFace = candFace
		}
	}
	return bc, ownerFace
}

// faceIjkToCellIndex encodes a face-substrate position at resolution
// res into a CellIndex: it finds the owning base cell, then walks the
// resolution ladder down from res to 0 peeling one digit per level via
// the aperture-7 up-sampling operators.
func faceIjkToCellIndex(f FaceIJK, res int) CellIndex {
	bc, _, rotation := resolveOwner(f.Face, f.Coord, res)
	coord := f.Coord
	if rotation != 0 {
		coord = coord.rotate60ccwN(rotation)
	}
	origin := scaledHome(bc, res)
	ijk := coord.sub(origin).normalize()

	digits := make([]int, res+1)
	for r := res; r >= 1; r-- {
		last := ijk
		var up, lastCenter CoordIJK
		if r%2 == 1 {
			up = last.upAp7r()
			lastCenter = up.downAp7r()
		} else {
			up = last.upAp7()
			lastCenter = up.downAp7()
		}
		diff := last.sub(lastCenter).normalize()
		digits[r] = unitIjkToDigit(diff)
		ijk = up
	}

	h := newCellIndex(res, bc)
	for r := 1; r <= res; r++ {
		h = setIndexDigit(h, r, digits[r])
	}
	return h
}

// unitIjkToDigit identifies which of the 7 unit vectors a normalized
// CoordIJK equals, returning InvalidDigit if none match.
func unitIjkToDigit(c CoordIJK) int {
	c = c.normalize()
	for d := 0; d < NumDigits; d++ {
		if c == unitVecs[d] {
			return d
		}
	}
	return InvalidDigit
}

// cellIndexToFaceIjk decodes h to its absolute face-substrate position
// at its own resolution, by walking its digit sequence down from the
// base cell's resolution-0 home.
func cellIndexToFaceIjk(h CellIndex) FaceIJK {
	bc := H3GetBaseCell(h)
	res := H3GetResolution(h)
	face := baseCellData[bc].face
	ijk := baseCellData[bc].home

	for r := 1; r <= res; r++ {
		if r%2 == 1 {
			ijk = ijk.downAp7r()
		} else {
			ijk = ijk.downAp7()
		}
		d := getIndexDigit(h, r)
		ijk = ijk.add(unitVecs[d]).normalize()
	}
	return FaceIJK{Face: face, Coord: ijk}
}
