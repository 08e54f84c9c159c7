package h3

import "sort"

// Neighbor returns the cell adjacent to h in direction dir (1..6), or
// 0 if dir is out of range or h is a pentagon and dir is its deleted K
// direction.
func Neighbor(h CellIndex, dir int) CellIndex {
	if dir < KAxesDigit || dir > IJAxesDigit {
		return 0
	}
	if H3IsPentagon(h) && dir == KAxesDigit {
		return 0
	}
	res := H3GetResolution(h)
	fijk := cellIndexToFaceIjk(h)
	newIjk := fijk.Coord.neighbor(dir)
	return faceIjkToCellIndex(FaceIJK{Face: fijk.Face, Coord: newIjk}, res)
}

// MaxKringSize returns the maximum number of cells a k-ring can
// produce: 3k(k+1)+1, achieved when no pentagon is encountered.
func MaxKringSize(k int) int {
	return 3*k*(k+1) + 1
}

// hexRingDirs is the direction cycle hexRing walks, counter-clockwise
// and k steps per side, after stepping k cells out along the I axis.
var hexRingDirs = [NumHexDirections]int{JAxesDigit, JKAxesDigit, KAxesDigit, IKAxesDigit, IAxesDigit, IJAxesDigit}

// HexRing walks the single hollow ring of cells at distance k from
// origin, assuming no pentagon is encountered; it returns a nonzero
// status (and nil cells) if a pentagon is hit partway through, per the
// fast-path contract of the original C API.
func HexRing(origin CellIndex, k int) ([]CellIndex, int) {
	if k == 0 {
		return []CellIndex{origin}, 0
	}
	cur := origin
	for i := 0; i < k; i++ {
		cur = Neighbor(cur, IAxesDigit)
		if cur == 0 {
			return nil, 1
		}
	}

	out := make([]CellIndex, 0, 6*k)
	for _, d := range hexRingDirs {
		for s := 0; s < k; s++ {
			out = append(out, cur)
			cur = Neighbor(cur, d)
			if cur == 0 {
				return nil, 1
			}
		}
	}
	return out, 0
}

// HexRange fills the ball of radius k around origin in ring order
// (ring 0, then ring 1 CCW, ring 2 CCW, ...), the fast path that
// refuses (status 1) rather than handle a pentagon encounter.
func HexRange(origin CellIndex, k int) ([]CellIndex, int) {
	out := make([]CellIndex, 0, MaxKringSize(k))
	out = append(out, origin)
	for r := 1; r <= k; r++ {
		ring, status := HexRing(origin, r)
		if status != 0 {
			return nil, 1
		}
		out = append(out, ring...)
	}
	return out, 0
}

// HexRangeDistances is HexRange plus a parallel per-cell BFS distance.
func HexRangeDistances(origin CellIndex, k int) ([]CellIndex, []int, int) {
	cells := make([]CellIndex, 0, MaxKringSize(k))
	dists := make([]int, 0, MaxKringSize(k))
	cells = append(cells, origin)
	dists = append(dists, 0)
	for r := 1; r <= k; r++ {
		ring, status := HexRing(origin, r)
		if status != 0 {
			return nil, nil, 1
		}
		for range ring {
			dists = append(dists, r)
		}
		cells = append(cells, ring...)
	}
	return cells, dists, 0
}

// HexRanges concatenates HexRange(h, k) for every h in set; it returns
// a nonzero status if any individual range hits a pentagon.
func HexRanges(set []CellIndex, k int) ([]CellIndex, int) {
	out := make([]CellIndex, 0, len(set)*MaxKringSize(k))
	for _, h := range set {
		r, status := HexRange(h, k)
		if status != 0 {
			return nil, 1
		}
		out = append(out, r...)
	}
	return out, 0
}

// KRing is the pentagon-tolerant ball of radius k around origin,
// explored by BFS and deduplicated by index equality.
func KRing(origin CellIndex, k int) []CellIndex {
	cells, _ := KRingDistances(origin, k)
	return cells
}

// KRingDistances is KRing plus the BFS distance of each returned cell
// from origin.
func KRingDistances(origin CellIndex, k int) ([]CellIndex, []int) {
	visited := map[CellIndex]int{origin: 0}
	frontier := []CellIndex{origin}

	for d := 1; d <= k; d++ {
		var next []CellIndex
		for _, c := range frontier {
			for dir := KAxesDigit; dir <= IJAxesDigit; dir++ {
				n := Neighbor(c, dir)
				if n == 0 {
					continue
				}
				if _, seen := visited[n]; !seen {
					visited[n] = d
					next = append(next, n)
				}
			}
		}
		frontier = next
	}

	cells := make([]CellIndex, 0, len(visited))
	for c := range visited {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })

	dists := make([]int, len(cells))
	for i, c := range cells {
		dists[i] = visited[c]
	}
	return cells, dists
}

// H3IndexesAreNeighbors reports whether a and b are distinct, same
// resolution, valid cells with b in a's 6-neighbor set.
func H3IndexesAreNeighbors(a, b CellIndex) bool {
	if a == b {
		return false
	}
	if !H3IsValid(a) || !H3IsValid(b) {
		return false
	}
	if H3GetResolution(a) != H3GetResolution(b) {
		return false
	}
	for dir := KAxesDigit; dir <= IJAxesDigit; dir++ {
		if Neighbor(a, dir) == b {
			return true
		}
	}
	return false
}
