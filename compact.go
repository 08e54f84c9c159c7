package h3

import "sort"

// CompactOK and CompactErrDuplicateInput name the compact/uncompact
// status codes this port defines, resolving spec.md's open question
// on the full failure-code contract (see DESIGN.md).
const (
	CompactOK                = 0
	CompactErrDuplicateInput = 1
)

// Compact replaces complete groups of sibling cells with their parent,
// repeating upward until no further merge is possible. It returns
// CompactErrDuplicateInput if set contains a repeated index.
func Compact(set []CellIndex) ([]CellIndex, int) {
	work := make(map[CellIndex]bool, len(set))
	for _, h := range set {
		if work[h] {
			return nil, CompactErrDuplicateInput
		}
		work[h] = true
	}

	for {
		// Group every cell finer than resolution 0 under its direct
		// parent, at every resolution, so a merge at one level is
		// never blocked by unmerged cells at a finer one.
		byParent := make(map[CellIndex][]CellIndex)
		for h := range work {
			r := H3GetResolution(h)
			if r == 0 {
				continue
			}
			byParent[H3ToParent(h, r-1)] = append(byParent[H3ToParent(h, r-1)], h)
		}

		changed := false
		for parent, children := range byParent {
			need := 7
			if H3IsPentagon(parent) {
				need = 6
			}
			if len(children) >= need {
				for _, c := range children {
					delete(work, c)
				}
				work[parent] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	out := make([]CellIndex, 0, len(work))
	for h := range work {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, CompactOK
}

// MaxUncompactSize returns an upper bound on the size Uncompact(set, res)
// produces (exact unless set holds a pentagon, which has fewer
// descendants), or -1 if any cell in set is finer than res.
func MaxUncompactSize(set []CellIndex, res int) int64 {
	var total int64
	for _, h := range set {
		r := H3GetResolution(h)
		if r > res {
			return -1
		}
		total += pow7(res - r)
	}
	return total
}

// Uncompact expands every cell in set to its descendants at resolution
// res, passing through cells already at res unchanged. It returns a
// nonzero status if any cell in set is finer than res.
func Uncompact(set []CellIndex, res int) ([]CellIndex, int) {
	size := MaxUncompactSize(set, res)
	if size < 0 {
		return nil, 1
	}
	out := make([]CellIndex, 0, size)
	for _, h := range set {
		r := H3GetResolution(h)
		if r == res {
			out = append(out, h)
			continue
		}
		out = append(out, H3ToChildren(h, res)...)
	}
	return out, 0
}
