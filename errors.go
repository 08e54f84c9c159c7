package h3

import "github.com/pkg/errors"

// ErrMalformedIndex is returned by ParseCellIndex when the input
// string is not a well-formed, valid cell index.
var ErrMalformedIndex = errors.New("h3: malformed cell index")

// ErrNotNeighbors is returned by edge construction helpers that choose
// to surface a Go error instead of the historical sentinel-zero return.
var ErrNotNeighbors = errors.New("h3: cells are not neighbors")

// ParseCellIndex parses and validates a canonical hex cell index
// string, wrapping the zero-sentinel style of StringToH3/H3IsValid in
// an idiomatic (CellIndex, error) pair for callers that prefer it.
func ParseCellIndex(str string) (CellIndex, error) {
	h := StringToH3(str)
	if h == 0 || !H3IsValid(h) {
		return 0, errors.Wrapf(ErrMalformedIndex, "input %q", str)
	}
	return h, nil
}

// MustEdge is GetH3UnidirectionalEdge with an idiomatic error instead
// of a zero sentinel, for callers that have already validated origin
// and destination and want a hard failure on programmer error.
func MustEdge(origin, destination CellIndex) (DirectedEdgeIndex, error) {
	e := GetH3UnidirectionalEdge(origin, destination)
	if e == 0 {
		return 0, errors.Wrapf(ErrNotNeighbors, "origin=%s destination=%s", H3ToString(origin), H3ToString(destination))
	}
	return e, nil
}
