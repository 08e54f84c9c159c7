package h3

import "sort"

// LinkedGeoCoord is one vertex of a LinkedGeoLoop.
type LinkedGeoCoord struct {
	Vertex GeoCoord
	Next   *LinkedGeoCoord
}

// LinkedGeoLoop is a closed vertex loop: the first loop of a
// LinkedGeoPolygon is its outer boundary, every following loop is a
// hole.
type LinkedGeoLoop struct {
	First *LinkedGeoCoord
	Last  *LinkedGeoCoord
	Next  *LinkedGeoLoop
}

// LinkedGeoPolygon is one node of the singly-linked polygon list
// h3SetToLinkedGeo produces. The root polygon exclusively owns every
// descendant loop and coordinate node.
type LinkedGeoPolygon struct {
	First *LinkedGeoLoop
	Next  *LinkedGeoPolygon
}

type directedEdgeKey struct {
	origin, dest CellIndex
}

// H3SetToLinkedGeo reconstructs the outer boundary of a set of cells
// as a multi-polygon with holes: directed edges whose reverse is also
// present are internal and cancel; the survivors are traced into
// closed loops, classified outer (CCW) or hole (CW) by signed area,
// and each hole is assigned to its innermost enclosing outer loop.
func H3SetToLinkedGeo(set []CellIndex) *LinkedGeoPolygon {
	present := make(map[directedEdgeKey]bool)
	for _, h := range set {
		for dir := KAxesDigit; dir <= IJAxesDigit; dir++ {
			n := Neighbor(h, dir)
			if n == 0 {
				continue
			}
			present[directedEdgeKey{h, n}] = true
		}
	}

	boundary := make(map[CellIndex][]CellIndex)
	for k := range present {
		if present[directedEdgeKey{k.dest, k.origin}] {
			continue // internal edge, cancels with its reverse
		}
		boundary[k.origin] = append(boundary[k.origin], k.dest)
	}
	if len(boundary) == 0 {
		return nil
	}
	for o := range boundary {
		dests := boundary[o]
		sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
		boundary[o] = dests
	}

	origins := make([]CellIndex, 0, len(boundary))
	for o := range boundary {
		origins = append(origins, o)
	}
	sort.Slice(origins, func(i, j int) bool { return origins[i] < origins[j] })

	used := make(map[directedEdgeKey]bool)
	var loops [][]GeoCoord
	for _, origin := range origins {
		for _, d := range boundary[origin] {
			key := directedEdgeKey{origin, d}
			if used[key] {
				continue
			}
			loop := traceLoop(origin, d, boundary, used)
			if len(loop) >= 3 {
				loops = append(loops, loop)
			}
		}
	}

	var outers, holes [][]GeoCoord
	for _, loop := range loops {
		if signedArea(loop) > 0 {
			outers = append(outers, loop)
		} else {
			holes = append(holes, loop)
		}
	}
	if len(outers) == 0 {
		return nil
	}

	root := &LinkedGeoPolygon{First: loopFromVerts(outers[0])}
	polyForOuter := make([]*LinkedGeoPolygon, len(outers))
	polyForOuter[0] = root
	cur := root
	for i := 1; i < len(outers); i++ {
		p := &LinkedGeoPolygon{First: loopFromVerts(outers[i])}
		cur.Next = p
		cur = p
		polyForOuter[i] = p
	}

	for _, hole := range holes {
		if len(hole) == 0 {
			continue
		}
		owner := polyForOuter[0]
		for i, outer := range outers {
			if pointInPolygon(hole[0], Polygon{Exterior: outer}) {
				owner = polyForOuter[i]
				break
			}
		}
		loop := loopFromVerts(hole)
		last := owner.First
		for last.Next != nil {
			last = last.Next
		}
		last.Next = loop
	}

	return root
}

// traceLoop follows boundary edges starting at origin->next until it
// returns to origin, marking each traversed edge used.
func traceLoop(origin, next CellIndex, boundary map[CellIndex][]CellIndex, used map[directedEdgeKey]bool) []GeoCoord {
	var verts []GeoCoord
	cur, nxt := origin, next
	for {
		key := directedEdgeKey{cur, nxt}
		if used[key] {
			break
		}
		used[key] = true
		verts = append(verts, H3ToGeo(cur))
		cur = nxt
		if cur == origin {
			break
		}
		found := false
		for _, d := range boundary[cur] {
			if !used[(directedEdgeKey{cur, d})] {
				nxt = d
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return verts
}

// signedArea computes twice the shoelace area of loop in the
// lat/lon plane, unwrapping longitude relative to the first vertex so
// loops crossing the antimeridian don't distort the sign. Positive is
// counter-clockwise.
func signedArea(loop []GeoCoord) float64 {
	n := len(loop)
	if n < 3 {
		return 0
	}
	ref := loop[0].Lon
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi := unwrapLon(loop[i].Lon, ref)
		yi := loop[i].Lat
		xj := unwrapLon(loop[j].Lon, ref)
		yj := loop[j].Lat
		sum += xi*yj - xj*yi
	}
	return sum
}

func loopFromVerts(verts []GeoCoord) *LinkedGeoLoop {
	loop := &LinkedGeoLoop{}
	var last *LinkedGeoCoord
	for _, v := range verts {
		node := &LinkedGeoCoord{Vertex: v}
		if loop.First == nil {
			loop.First = node
		} else {
			last.Next = node
		}
		last = node
	}
	loop.Last = last
	return loop
}

// DestroyLinkedPolygon releases every node reachable from root by
// clearing its links, the sole release entry point for the graph
// H3SetToLinkedGeo allocates.
func DestroyLinkedPolygon(root *LinkedGeoPolygon) {
	for p := root; p != nil; {
		for loop := p.First; loop != nil; {
			for c := loop.First; c != nil; {
				next := c.Next
				c.Next = nil
				c = next
			}
			loop.First, loop.Last = nil, nil
			nextLoop := loop.Next
			loop.Next = nil
			loop = nextLoop
		}
		p.First = nil
		next := p.Next
		p.Next = nil
		p = next
	}
}
