package h3

// GetH3UnidirectionalEdge returns the directed edge from origin to
// destination, or 0 if the two cells are not neighbors.
func GetH3UnidirectionalEdge(origin, destination CellIndex) DirectedEdgeIndex {
	for dir := KAxesDigit; dir <= IJAxesDigit; dir++ {
		if Neighbor(origin, dir) == destination {
			e := SetMode(origin, ModeDirectedEdge)
			e = SetReservedBits(e, dir)
			return e
		}
	}
	return 0
}

// GetOriginH3IndexFromUnidirectionalEdge returns e's origin cell.
func GetOriginH3IndexFromUnidirectionalEdge(e DirectedEdgeIndex) CellIndex {
	h := SetReservedBits(e, 0)
	return SetMode(h, ModeCell)
}

// GetDestinationH3IndexFromUnidirectionalEdge returns e's destination
// cell: the origin's neighbor in e's encoded direction.
func GetDestinationH3IndexFromUnidirectionalEdge(e DirectedEdgeIndex) CellIndex {
	origin := GetOriginH3IndexFromUnidirectionalEdge(e)
	dir := GetReservedBits(e)
	return Neighbor(origin, dir)
}

// GetH3IndexesFromUnidirectionalEdge returns both endpoints of e.
func GetH3IndexesFromUnidirectionalEdge(e DirectedEdgeIndex) (origin, destination CellIndex) {
	origin = GetOriginH3IndexFromUnidirectionalEdge(e)
	destination = GetDestinationH3IndexFromUnidirectionalEdge(e)
	return origin, destination
}

// GetH3UnidirectionalEdgesFromHexagon returns the (up to) 6 directed
// edges leaving h, one per direction; a pentagon leaves its K-axis
// slot as 0.
func GetH3UnidirectionalEdgesFromHexagon(h CellIndex) [NumHexDirections]DirectedEdgeIndex {
	var edges [NumHexDirections]DirectedEdgeIndex
	pentagon := H3IsPentagon(h)
	for dir := KAxesDigit; dir <= IJAxesDigit; dir++ {
		if pentagon && dir == KAxesDigit {
			continue
		}
		e := SetMode(h, ModeDirectedEdge)
		e = SetReservedBits(e, dir)
		edges[dir-1] = e
	}
	return edges
}

// GetH3UnidirectionalEdgeBoundary returns the shared boundary of e's
// origin and destination: 2 vertices for a Class II hexagon-hexagon
// edge, 3 for a Class III or pentagon edge. It reads origin's plain
// per-direction vertices directly (hexPlaneVertices) rather than
// H3ToGeoBoundary's output, since that may carry extra face-crossing
// vertices unrelated to this specific edge.
func GetH3UnidirectionalEdgeBoundary(e DirectedEdgeIndex) GeoBoundary {
	origin := GetOriginH3IndexFromUnidirectionalEdge(e)
	dir := GetReservedBits(e)
	verts, scale, face := hexPlaneVertices(origin)
	n := len(verts)
	if n == 0 {
		return GeoBoundary{}
	}

	idx := -1
	for i, v := range verts {
		if v.dir == dir {
			idx = i
			break
		}
	}
	if idx == -1 {
		return GeoBoundary{}
	}
	next := (idx + 1) % n
	v1 := planeToGeo(verts[idx].plane, face, scale)
	v2 := planeToGeo(verts[next].plane, face, scale)

	if H3IsResClassIII(origin) || H3IsPentagon(origin) {
		midPlane := verts[idx].plane.Add(verts[next].plane).Scale(0.5)
		mid := planeToGeo(midPlane, face, scale)
		return GeoBoundary{Verts: []GeoCoord{v1, mid, v2}}
	}
	return GeoBoundary{Verts: []GeoCoord{v1, v2}}
}
